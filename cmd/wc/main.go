package main

import (
	"context"
	"os"

	"streamwc/config"
	db "streamwc/debug"
	"streamwc/mr"
	"streamwc/wc"
)

//
// Local word count: maps each input (path, "-", or s3://bucket/key),
// sorts, and reduces in one process. Output goes to $WC_OUTPUT or
// stdout.
//

func main() {
	cfg, err := config.Load()
	if err != nil {
		db.DFatalf("config err %v", err)
	}
	results, err := mr.RunLocal(context.Background(), cfg, wc.Map, wc.Reduce, os.Args[1:])
	if err != nil {
		db.DFatalf("RunLocal err %v", err)
	}
	for _, r := range results {
		mr.LogResult(cfg, r)
	}
}
