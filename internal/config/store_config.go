package config

// Store drivers.
const (
	StoreDriverSQLite = "sqlite"
	StoreDriverMemory = "memory"
)

type StoreConfig interface {
	GetStoreDriver() string
	GetStorePath() string
}

type Storage struct{}

var _ StoreConfig = Storage{}

func (Storage) GetStoreDriver() string {
	return GetEnv("STORE_DRIVER", StoreDriverSQLite)
}

func (Storage) GetStorePath() string {
	return GetEnv("STORE_PATH", "./data/genie.db")
}
