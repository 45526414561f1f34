package reader_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamwc/reader"
)

func TestNewReaderCounts(t *testing.T) {
	rdr := reader.NewReader(strings.NewReader("hello world\n"), "test")
	b, err := io.ReadAll(rdr)
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", string(b))
	assert.Equal(t, int64(12), rdr.Nbytes())
	assert.Nil(t, rdr.Close())
}

func TestOpenFile(t *testing.T) {
	pn := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(pn, []byte("a b c\n"), 0644))

	rdr, err := reader.Open(context.TODO(), pn, "")
	require.NoError(t, err)
	b, err := io.ReadAll(rdr)
	require.NoError(t, err)
	assert.Equal(t, "a b c\n", string(b))
	assert.Equal(t, int64(6), rdr.Nbytes())
	assert.Equal(t, pn, rdr.Name())
	assert.Nil(t, rdr.Close())
}

func TestOpenMissing(t *testing.T) {
	_, err := reader.Open(context.TODO(), filepath.Join(t.TempDir(), "nope"), "")
	assert.True(t, os.IsNotExist(err), "err %v", err)
}

func TestOpenStdin(t *testing.T) {
	for _, n := range []string{"", reader.STDIN} {
		rdr, err := reader.Open(context.TODO(), n, "")
		require.NoError(t, err)
		assert.Equal(t, reader.STDIN, rdr.Name())
		assert.Nil(t, rdr.Close(), "stdin is not closed")
	}
}

func TestParseS3(t *testing.T) {
	tests := []struct {
		name   string
		bucket string
		key    string
		ok     bool
	}{
		{"s3://books/gutenberg/pg-1.txt", "books", "gutenberg/pg-1.txt", true},
		{"s3://books/a", "books", "a", true},
		{"s3://books", "", "", false},
		{"s3://books/", "", "", false},
		{"s3:///key", "", "", false},
		{"/tmp/s3://x", "", "", false},
		{"input.txt", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, k, ok := reader.ParseS3(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.bucket, b)
			assert.Equal(t, tt.key, k)
		})
	}
}
