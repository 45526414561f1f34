package mr

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/thanhpk/randstr"

	"streamwc/config"
	db "streamwc/debug"
	"streamwc/reader"
	"streamwc/writer"
)

// RunLocal maps each input into a spill file, then sort-reduces the
// spill file into cfg.Output. No inputs means stdin. It returns one
// Result per input followed by the reduce Result.
func RunLocal(ctx context.Context, cfg *config.Config, mapf MapT, reducef ReduceT, inputs []string) ([]*Result, error) {
	if len(inputs) == 0 {
		inputs = []string{reader.STDIN}
	}
	dir := cfg.Spilldir
	if dir == "" {
		dir = os.TempDir()
	}
	pn := filepath.Join(dir, "wc-spill-"+randstr.Hex(16))
	spill, err := os.OpenFile(pn, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return nil, fmt.Errorf("spill: %w", err)
	}
	defer os.Remove(pn)
	defer spill.Close()

	results := make([]*Result, 0, len(inputs)+1)
	m := NewMapper(mapf, cfg)
	for _, in := range inputs {
		res, err := mapInput(ctx, m, in, cfg.S3profile, spill)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	if _, err := spill.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("spill: %w", err)
	}

	wrt, err := writer.Create(cfg.Output)
	if err != nil {
		return nil, fmt.Errorf("output: %w", err)
	}
	res, err := NewSortReducer(reducef, cfg).DoReduce(spill, wrt)
	if err != nil {
		wrt.Abort()
		return nil, err
	}
	if err := wrt.Close(); err != nil {
		return nil, fmt.Errorf("output: %w", err)
	}
	db.DPrintf(db.SORTREDUCER, "output %v", wrt.Name())
	return append(results, res), nil
}

func mapInput(ctx context.Context, m *Mapper, in, s3profile string, spill io.Writer) (*Result, error) {
	rdr, err := reader.Open(ctx, in, s3profile)
	if err != nil {
		return nil, err
	}
	defer rdr.Close()
	res, err := m.DoMap(rdr, spill)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", in, err)
	}
	res.Task = "map " + rdr.Name()
	return res, nil
}
