package mr

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"streamwc/config"
	db "streamwc/debug"
	"streamwc/reader"
	"streamwc/writer"
)

// Reducer reduces each run of consecutive equal keys to one record.
type Reducer struct {
	reducef ReduceT
	cfg     *config.Config
}

func NewReducer(reducef ReduceT, cfg *config.Config) *Reducer {
	return &Reducer{reducef: reducef, cfg: cfg}
}

// readKV reads the next well-formed record from scanner, counting the
// lines it skips in res. It returns nil at end of input.
func readKV(scanner *bufio.Scanner, res *Result, label db.Tselector) *KeyValue {
	for scanner.Scan() {
		res.Nin++
		l := strings.TrimSpace(scanner.Text())
		kv, err := DecodeKV(l)
		if err == nil {
			return kv
		}
		if errors.Is(err, ErrNoSep) {
			res.Nnosep++
		} else {
			res.Nbadval++
		}
		db.DPrintf(label, "skip line %d %q: %v", res.Nin, l, err)
	}
	return nil
}

// DoReduce reduces rdr into wr in one pass, emitting groups in input
// order. The caller must supply input with non-decreasing keys, as an
// external sort does: a key that reappears after a different key
// starts a new group and gets a second, separate total. Use
// SortReducer for unsorted input.
func (r *Reducer) DoReduce(rdr io.Reader, wr io.Writer) (*Result, error) {
	start := time.Now()
	rrdr := reader.NewReader(rdr, "reduce-in")
	scanner, done, err := newScanner(rrdr, r.cfg)
	if err != nil {
		return nil, err
	}
	defer done()

	wrt := writer.NewWriter(wr)
	bwrt := bufio.NewWriterSize(wrt, r.cfg.Bufsz)
	res := &Result{Task: "reduce"}
	emit := func(kv *KeyValue) error {
		if _, err := EncodeKV(bwrt, kv); err != nil {
			return err
		}
		res.Nout++
		return nil
	}

	// The current group; its values collapse through reducef at maxcap.
	var grp *values
	for kv := readKV(scanner, res, db.REDUCER); kv != nil; kv = readKV(scanner, res, db.REDUCER) {
		if grp == nil {
			grp = newValues(kv.Key, r.cfg.Mincap)
		} else if kv.Key != grp.k {
			if err := r.reducef(grp.k, grp.vs, emit); err != nil {
				return nil, err
			}
			grp.reset(kv.Key)
		}
		if err := grp.combine(kv.Value, r.reducef, r.cfg.Maxcap); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		db.DPrintf(db.REDUCER, "scanner err %v", err)
		return nil, fmt.Errorf("reduce read: %w", err)
	}
	if grp != nil {
		if err := r.reducef(grp.k, grp.vs, emit); err != nil {
			return nil, err
		}
	}
	if err := bwrt.Flush(); err != nil {
		return nil, fmt.Errorf("reduce flush: %w", err)
	}
	res.In = rrdr.Nbytes()
	res.Out = wrt.Nbytes()
	res.MsInner = time.Since(start).Milliseconds()
	db.DPrintf(db.REDUCER, "DoReduce %v", res)
	return res, nil
}
