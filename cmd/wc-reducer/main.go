package main

import (
	"fmt"
	"os"

	"streamwc/config"
	db "streamwc/debug"
	"streamwc/mr"
	"streamwc/wc"
)

//
// Streaming reducer: key-sorted "word\tcount" lines on stdin become one
// "word\ttotal" line per word on stdout. Malformed lines are skipped.
//

func main() {
	if len(os.Args) != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %v < sorted-input > output\n", os.Args[0])
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		db.DFatalf("config err %v", err)
	}
	res, err := mr.NewReducer(wc.Reduce, cfg).DoReduce(os.Stdin, os.Stdout)
	if err != nil {
		db.DFatalf("DoReduce err %v", err)
	}
	mr.LogResult(cfg, res)
}
