// Package store defines the key-value store capability that backs every
// feature of the server. It mirrors browser localStorage: durable
// string-keyed storage with synchronous get/set/remove and no transactions.
//
// Each feature package owns its keys; no two packages share a raw key.
// Implementations live in the memstore and sqlitestore subpackages.
package store

import "context"

// Store is the injected key-value capability.
//
// Contract:
//   - Get returns the value and true when the key is present; absence is
//     reported with false, not an error.
//   - Set overwrites unconditionally.
//   - Remove of an absent key is a no-op.
//
// Errors from any method indicate the store itself is unavailable and
// should be treated as fatal for the operation.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
