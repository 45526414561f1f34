package reader

import (
	"context"
	"fmt"
	"io"
	"os"

	db "streamwc/debug"
)

const STDIN = "-"

// Reader counts the bytes read from an input source.
type Reader struct {
	rdr    io.Reader
	closer io.Closer
	name   string
	nbytes int64
}

// NewReader wraps rdr; Close does not close rdr.
func NewReader(rdr io.Reader, name string) *Reader {
	return &Reader{rdr: rdr, name: name}
}

// Open opens name: "" or "-" is stdin, "s3://bucket/key" is an S3
// object (read with the shared config profile s3profile, if set), and
// anything else is a local file.
func Open(ctx context.Context, name, s3profile string) (*Reader, error) {
	if name == "" || name == STDIN {
		return NewReader(os.Stdin, STDIN), nil
	}
	if bucket, key, ok := ParseS3(name); ok {
		rc, err := openS3(ctx, bucket, key, s3profile)
		if err != nil {
			db.DPrintf(db.READER_ERR, "openS3 %v err %v", name, err)
			return nil, fmt.Errorf("open %v: %w", name, err)
		}
		return &Reader{rdr: rc, closer: rc, name: name}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		db.DPrintf(db.READER_ERR, "Open %v err %v", name, err)
		return nil, err
	}
	return &Reader{rdr: f, closer: f, name: name}, nil
}

func (rdr *Reader) Read(p []byte) (int, error) {
	n, err := rdr.rdr.Read(p)
	rdr.nbytes += int64(n)
	return n, err
}

func (rdr *Reader) Close() error {
	db.DPrintf(db.READER, "Close %v nbytes %d", rdr.name, rdr.nbytes)
	if rdr.closer == nil {
		return nil
	}
	return rdr.closer.Close()
}

func (rdr *Reader) Name() string {
	return rdr.name
}

func (rdr *Reader) Nbytes() int64 {
	return rdr.nbytes
}
