package wc_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamwc/mr"
	"streamwc/wc"
)

func mapLine(t *testing.T, line string) []mr.KeyValue {
	kvs := make([]mr.KeyValue, 0)
	err := wc.Map(line, func(kv *mr.KeyValue) error {
		kvs = append(kvs, *kv)
		return nil
	})
	require.NoError(t, err)
	return kvs
}

func keys(kvs []mr.KeyValue) []string {
	ks := make([]string, 0, len(kvs))
	for _, kv := range kvs {
		ks = append(ks, kv.Key)
	}
	return ks
}

func TestMap(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"simple", "the cat sat on the mat", []string{"the", "cat", "sat", "on", "the", "mat"}},
		{"punctuation and case", "Hello, hello! HELLO.", []string{"hello", "hello", "hello"}},
		{"apostrophe splits", "abc  def's", []string{"abc", "def", "s"}},
		{"digits and underscore", "snake_case x2 42 _", []string{"snake_case", "x2", "42", "_"}},
		{"single letters", "a b c", []string{"a", "b", "c"}},
		{"surrounding whitespace", "  \t spaced out \r", []string{"spaced", "out"}},
		{"unicode", "Café ÜBER naïve", []string{"café", "über", "naïve"}},
		{"tabs separate", "key\tvalue", []string{"key", "value"}},
		{"empty", "", []string{}},
		{"no word characters", "... --- !!! ", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kvs := mapLine(t, tt.line)
			assert.Equal(t, tt.want, keys(kvs))
			for _, kv := range kvs {
				assert.Equal(t, int64(1), kv.Value)
			}
		})
	}
}

func TestMapIdempotent(t *testing.T) {
	const line = "To be, or not to be: that is the question."
	assert.Equal(t, mapLine(t, line), mapLine(t, line))
}

func TestMapEmitErr(t *testing.T) {
	errStop := errors.New("stop")
	n := 0
	err := wc.Map("one two three", func(kv *mr.KeyValue) error {
		n++
		return errStop
	})
	assert.ErrorIs(t, err, errStop)
	assert.Equal(t, 1, n)
}

func TestReduce(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		values []int64
		want   int64
	}{
		{"single value", "fox", []int64{1}, 1},
		{"multiple values", "the", []int64{1, 1, 1}, 3},
		{"partial sums", "a", []int64{5, 1, 10}, 16},
		{"no values", "none", []int64{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *mr.KeyValue
			err := wc.Reduce(tt.key, tt.values, func(kv *mr.KeyValue) error {
				got = kv
				return nil
			})
			require.NoError(t, err)
			assert.Equal(t, &mr.KeyValue{Key: tt.key, Value: tt.want}, got)
		})
	}
}
