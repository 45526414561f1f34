package wc

//
// a word-count application for the streaming mapper and reducer.
//

import (
	"strings"

	"streamwc/mr"
)

// Map emits (word, 1) for every word of the lowercased line.
func Map(line string, emit mr.EmitT) error {
	l := strings.ToLower(strings.TrimSpace(line))
	return mr.Words([]byte(l), func(w []byte) error {
		return emit(&mr.KeyValue{Key: string(w), Value: 1})
	})
}

// Reduce emits the sum of values for key.
func Reduce(key string, values []int64, emit mr.EmitT) error {
	n := int64(0)
	for _, v := range values {
		n += v
	}
	return emit(&mr.KeyValue{Key: key, Value: n})
}
