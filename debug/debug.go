package debug

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

//
// Debug output is controlled by the WCDEBUG environment variable, which
// can be a list of selectors (e.g., "MAPPER;REDUCER"). All output goes
// to stderr; stdout carries records only.
//

const WCDEBUG = "WCDEBUG"

var labels map[Tselector]bool

func init() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	SetLabels(os.Getenv(WCDEBUG))
}

// SetLabels replaces the enabled selectors with those in s.
func SetLabels(s string) {
	m := make(map[Tselector]bool)
	for _, l := range strings.Split(s, ";") {
		if l = strings.TrimSpace(l); l != "" {
			m[Tselector(l)] = true
		}
	}
	labels = m
}

func IsLabelSet(label Tselector) bool {
	return label == ALWAYS || labels[label]
}

func DPrintf(label Tselector, format string, v ...interface{}) {
	if IsLabelSet(label) {
		log.Printf("%v %v %v", progName(), label, fmt.Sprintf(format, v...))
	}
}

func DFatalf(format string, v ...interface{}) {
	// Get info for the caller.
	pc, file, line, ok := runtime.Caller(1)
	fnDetails := runtime.FuncForPC(pc)
	if ok && fnDetails != nil {
		log.Fatalf("FATAL %v %v %v:%v %v", progName(), fnDetails.Name(), file, line, fmt.Sprintf(format, v...))
	} else {
		log.Fatalf("FATAL %v (missing details) %v", progName(), fmt.Sprintf(format, v...))
	}
}

func progName() string {
	return filepath.Base(os.Args[0])
}
