package keeper

import (
	"cosmossdk.io/collections/codec"
	"cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"

	"github.com/initia-labs/ibc-storage/x/ibc/storage/types"
)

// Storage reads and writes values under IBC keys. Keys are stored by their
// textual form, so iteration follows the byte order of that form, not a
// segment-wise order ("a-b" sorts before "a/x").
type Storage struct {
	kvStore store.KVStore
}

// NewStorage wraps a KV store.
func NewStorage(kvStore store.KVStore) Storage {
	return Storage{kvStore: kvStore}
}

// Read returns the decoded value stored under the key, or false if absent.
func Read[T any](s Storage, key types.Key, vc codec.ValueCodec[T]) (T, bool, error) {
	var value T

	bz, err := s.kvStore.Get(key.Bytes())
	if err != nil {
		return value, false, err
	}
	if bz == nil {
		return value, false, nil
	}

	value, err = vc.Decode(bz)
	if err != nil {
		return value, false, errorsmod.Wrapf(err, "failed to decode the value of %s", key)
	}

	return value, true, nil
}

// Write encodes the value and stores it under the key.
func Write[T any](s Storage, key types.Key, vc codec.ValueCodec[T], value T) error {
	bz, err := vc.Encode(value)
	if err != nil {
		return errorsmod.Wrapf(err, "failed to encode the value of %s", key)
	}
	return s.kvStore.Set(key.Bytes(), bz)
}

// HasKey returns true if a value is stored under the key.
func (s Storage) HasKey(key types.Key) (bool, error) {
	return s.kvStore.Has(key.Bytes())
}

// Delete removes the value stored under the key.
func (s Storage) Delete(key types.Key) error {
	return s.kvStore.Delete(key.Bytes())
}

// IteratePrefix walks every key strictly below the prefix in ascending order.
func (s Storage) IteratePrefix(prefix types.Key, cb func(key types.Key, value []byte) (stop bool, err error)) error {
	start := prefix.PrefixBytes()
	iter, err := s.kvStore.Iterator(start, storetypes.PrefixEndBytes(start))
	if err != nil {
		return err
	}
	defer iter.Close()

	for ; iter.Valid(); iter.Next() {
		key, err := types.KeyFromBytes(iter.Key())
		if err != nil {
			return err
		}

		stop, err := cb(key, iter.Value())
		if err != nil {
			return err
		}
		if stop {
			break
		}
	}

	return nil
}
