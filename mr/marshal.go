package mr

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const SEP = '\t'

var (
	ErrNoSep    = errors.New("missing separator")
	ErrBadValue = errors.New("bad value")
)

// EncodeKV writes kv as "key\tvalue\n".
func EncodeKV(wr io.Writer, kv *KeyValue) (int, error) {
	b := make([]byte, 0, len(kv.Key)+22)
	b = append(b, kv.Key...)
	b = append(b, SEP)
	b = strconv.AppendInt(b, kv.Value, 10)
	b = append(b, '\n')
	n, err := wr.Write(b)
	if err != nil {
		return n, fmt.Errorf("encodeKV %q: %w", kv.Key, err)
	}
	return n, nil
}

// DecodeKV parses a "key\tvalue" line, splitting at the first tab.
func DecodeKV(line string) (*KeyValue, error) {
	k, v, ok := strings.Cut(line, string(SEP))
	if !ok {
		return nil, ErrNoSep
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrBadValue, v)
	}
	return &KeyValue{Key: k, Value: n}, nil
}
