package mr

import (
	"bufio"
	"io"

	"github.com/klauspost/readahead"

	"streamwc/config"
)

// newScanner returns a line scanner over rdr and a function that
// releases the read-ahead buffers, if any.
func newScanner(rdr io.Reader, cfg *config.Config) (*bufio.Scanner, func() error, error) {
	done := func() error { return nil }
	if cfg.Readahead > 0 {
		ra, err := readahead.NewReaderSize(rdr, cfg.Readahead, cfg.Bufsz)
		if err != nil {
			return nil, nil, err
		}
		rdr = ra
		done = ra.Close
	} else {
		rdr = bufio.NewReaderSize(rdr, cfg.Bufsz)
	}
	scanner := bufio.NewScanner(rdr)
	buf := make([]byte, 0, min(cfg.Bufsz, cfg.Linesz))
	scanner.Buffer(buf, cfg.Linesz)
	return scanner, done, nil
}
