package config

type VideoConfig interface {
	GetVideoAPIBaseURL() string
	GetVideoAPIKey() string
	GetVideoReplicaID() string
	GetVideoBackgroundURL() string
}

type Video struct{}

var _ VideoConfig = Video{}

func (Video) GetVideoAPIBaseURL() string {
	return GetEnv("VIDEO_API_BASE_URL", "https://tavusapi.com/v2")
}

func (Video) GetVideoAPIKey() string {
	return GetEnv("VIDEO_API_KEY", "")
}

func (Video) GetVideoReplicaID() string {
	return GetEnv("VIDEO_REPLICA_ID", "")
}

func (Video) GetVideoBackgroundURL() string {
	return GetEnv("VIDEO_BACKGROUND_URL", "https://tavusapi.com/backgrounds/gradient-purple.jpg")
}
