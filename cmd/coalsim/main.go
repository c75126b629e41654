// Command coalsim drives the coalescent library from the shell: it draws
// replicate genealogies and summarizes them, prints a single tree as node
// and edge tables, or runs a Wright–Fisher drift trajectory.
//
//	coalsim simulate --samples 10 --replicates 10000 --workers 4 --format yaml
//	coalsim tree --samples 5 --seed 42
//	coalsim drift --pop-size 100 --p0 0.2 --generations 500 --format json
package main

import (
	"os"
)

const (
	exitSuccess = 0
	exitError   = 1
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(exitError)
	}
	os.Exit(exitSuccess)
}
