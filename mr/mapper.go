package mr

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"streamwc/config"
	db "streamwc/debug"
	"streamwc/reader"
	"streamwc/writer"
)

// Mapper applies mapf to every input line and writes the emitted
// records, in order, one per line.
type Mapper struct {
	mapf MapT
	cfg  *config.Config
}

func NewMapper(mapf MapT, cfg *config.Config) *Mapper {
	return &Mapper{mapf: mapf, cfg: cfg}
}

// DoMap maps all of rdr into wr. Lines are stripped of surrounding
// whitespace before mapf sees them.
func (m *Mapper) DoMap(rdr io.Reader, wr io.Writer) (*Result, error) {
	start := time.Now()
	rrdr := reader.NewReader(rdr, "map-in")
	scanner, done, err := newScanner(rrdr, m.cfg)
	if err != nil {
		return nil, err
	}
	defer done()

	wrt := writer.NewWriter(wr)
	bwrt := bufio.NewWriterSize(wrt, m.cfg.Bufsz)
	res := &Result{Task: "map"}
	emit := func(kv *KeyValue) error {
		if _, err := EncodeKV(bwrt, kv); err != nil {
			return err
		}
		res.Nout++
		return nil
	}
	for scanner.Scan() {
		res.Nin++
		l := strings.TrimSpace(scanner.Text())
		if err := m.mapf(l, emit); err != nil {
			return nil, fmt.Errorf("map line %d: %w", res.Nin, err)
		}
	}
	if err := scanner.Err(); err != nil {
		db.DPrintf(db.MAPPER, "scanner err %v", err)
		return nil, fmt.Errorf("map read: %w", err)
	}
	if err := bwrt.Flush(); err != nil {
		return nil, fmt.Errorf("map flush: %w", err)
	}
	res.In = rrdr.Nbytes()
	res.Out = wrt.Nbytes()
	res.MsInner = time.Since(start).Milliseconds()
	db.DPrintf(db.MAPPER, "DoMap %v", res)
	return res, nil
}
