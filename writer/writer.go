package writer

import (
	"io"
	"os"

	"github.com/thanhpk/randstr"

	db "streamwc/debug"
)

const STDOUT = "-"

// Writer counts the bytes written to an output sink. A file sink is
// written under a temporary name and renamed into place on Close.
type Writer struct {
	wr     io.Writer
	file   *os.File
	name   string
	tmp    string
	nbytes int64
}

// NewWriter wraps wr; Close does not close wr.
func NewWriter(wr io.Writer) *Writer {
	return &Writer{wr: wr, name: STDOUT}
}

// Create returns a writer for name: "" or "-" is stdout.
func Create(name string) (*Writer, error) {
	if name == "" || name == STDOUT {
		return NewWriter(os.Stdout), nil
	}
	tmp := name + "." + randstr.Hex(8)
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		db.DPrintf(db.WRITER_ERR, "Create %v err %v", tmp, err)
		return nil, err
	}
	return &Writer{wr: f, file: f, name: name, tmp: tmp}, nil
}

func (wrt *Writer) Write(p []byte) (int, error) {
	n, err := wrt.wr.Write(p)
	wrt.nbytes += int64(n)
	if err != nil {
		db.DPrintf(db.WRITER_ERR, "Write %v err %v", wrt.name, err)
	}
	return n, err
}

// Close makes a file sink visible under its final name.
func (wrt *Writer) Close() error {
	db.DPrintf(db.WRITER, "Close %v nbytes %d", wrt.name, wrt.nbytes)
	if wrt.file == nil {
		return nil
	}
	if err := wrt.file.Close(); err != nil {
		os.Remove(wrt.tmp)
		return err
	}
	if err := os.Rename(wrt.tmp, wrt.name); err != nil {
		os.Remove(wrt.tmp)
		return err
	}
	return nil
}

// Abort discards a file sink; the final name is left untouched.
func (wrt *Writer) Abort() error {
	if wrt.file == nil {
		return nil
	}
	wrt.file.Close()
	return os.Remove(wrt.tmp)
}

func (wrt *Writer) Name() string {
	return wrt.name
}

func (wrt *Writer) Nbytes() int64 {
	return wrt.nbytes
}
