package mr

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"streamwc/config"
	db "streamwc/debug"
	"streamwc/reader"
	"streamwc/writer"
)

// SortReducer accepts records in any order. It buffers one combined
// entry per distinct key and emits them in key order, so its output
// matches sorting the input and running a Reducer over it.
type SortReducer struct {
	reducef ReduceT
	cfg     *config.Config
}

func NewSortReducer(reducef ReduceT, cfg *config.Config) *SortReducer {
	return &SortReducer{reducef: reducef, cfg: cfg}
}

func (r *SortReducer) DoReduce(rdr io.Reader, wr io.Writer) (*Result, error) {
	start := time.Now()
	rrdr := reader.NewReader(rdr, "sortreduce-in")
	scanner, done, err := newScanner(rrdr, r.cfg)
	if err != nil {
		return nil, err
	}
	defer done()

	res := &Result{Task: "sortreduce"}
	kvm := NewKVMap(r.cfg.Mincap, r.cfg.Maxcap)
	for kv := readKV(scanner, res, db.SORTREDUCER); kv != nil; kv = readKV(scanner, res, db.SORTREDUCER) {
		if err := kvm.Combine(kv.Key, kv.Value, r.reducef); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		db.DPrintf(db.SORTREDUCER, "scanner err %v", err)
		return nil, fmt.Errorf("sortreduce read: %w", err)
	}
	db.DPrintf(db.SORTREDUCER, "%d keys from %d lines", kvm.Len(), res.Nin)

	wrt := writer.NewWriter(wr)
	bwrt := bufio.NewWriterSize(wrt, r.cfg.Bufsz)
	if err := kvm.Emit(r.reducef, func(kv *KeyValue) error {
		if _, err := EncodeKV(bwrt, kv); err != nil {
			return err
		}
		res.Nout++
		return nil
	}); err != nil {
		return nil, err
	}
	if err := bwrt.Flush(); err != nil {
		return nil, fmt.Errorf("sortreduce flush: %w", err)
	}
	res.In = rrdr.Nbytes()
	res.Out = wrt.Nbytes()
	res.MsInner = time.Since(start).Milliseconds()
	return res, nil
}
