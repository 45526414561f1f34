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
// Streaming mapper: words on stdin become "word\t1" lines on stdout.
//

func main() {
	if len(os.Args) != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %v < input > output\n", os.Args[0])
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		db.DFatalf("config err %v", err)
	}
	res, err := mr.NewMapper(wc.Map, cfg).DoMap(os.Stdin, os.Stdout)
	if err != nil {
		db.DFatalf("DoMap err %v", err)
	}
	mr.LogResult(cfg, res)
}
