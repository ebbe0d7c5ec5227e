package interfaces

// KVStore is the local, synchronous, string-keyed persistence layer the
// account store mirrors its list into.
type KVStore interface {
	// Read returns the value stored under key. ok is false when the key is absent.
	Read(key string) (value string, ok bool, err error)
	// Write stores value under key, replacing any previous value.
	Write(key, value string) error
}
