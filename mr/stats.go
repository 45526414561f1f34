package mr

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"streamwc/config"
	db "streamwc/debug"
)

// Result summarizes one pass of a mapper or reducer.
type Result struct {
	Task    string
	In      int64 // bytes read
	Out     int64 // bytes written
	Nin     int64 // lines read
	Nout    int64 // records written
	Nnosep  int64 // lines skipped for a missing tab
	Nbadval int64 // lines skipped for a non-integer value
	MsInner int64
}

func (r *Result) Nskipped() int64 {
	return r.Nnosep + r.Nbadval
}

func (r *Result) String() string {
	return fmt.Sprintf("%s: in %s out %s lines %d records %d skipped %d (nosep %d badval %d) %vms (%s)",
		r.Task, humanize.Bytes(uint64(r.In)), humanize.Bytes(uint64(r.Out)),
		r.Nin, r.Nout, r.Nskipped(), r.Nnosep, r.Nbadval,
		r.MsInner, TputStr(r.In+r.Out, r.MsInner))
}

func Mbyte(sz int64) float64 {
	return float64(sz) / float64(config.MBYTE)
}

func TputStr(sz int64, ms int64) string {
	if ms <= 0 {
		return "-"
	}
	s := float64(ms) / 1000
	return fmt.Sprintf("%.2fMB/s", Mbyte(sz)/s)
}

// LogResult reports r on stderr if stats are enabled, and under MR_TPT
// otherwise.
func LogResult(cfg *config.Config, r *Result) {
	if cfg.Stats {
		db.DPrintf(db.ALWAYS, "%v", r)
	} else {
		db.DPrintf(db.MR_TPT, "%v", r)
	}
}
