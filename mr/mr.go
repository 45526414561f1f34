package mr

// A record exchanged between stages. Mappers emit Value 1; reducers
// emit the total for Key.
type KeyValue struct {
	Key   string
	Value int64
}

type EmitT func(kv *KeyValue) error

// MapT turns one input line into zero or more records.
type MapT func(line string, emit EmitT) error

// ReduceT combines values for key and emits the result. It may be
// called more than once per key with a previously emitted value as the
// first element of values, so it must be associative.
type ReduceT func(key string, values []int64, emit EmitT) error
