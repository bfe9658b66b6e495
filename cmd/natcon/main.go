// 12 Oct 2026

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	. "github.com/andrew-torda/qcontact/pkg/common"
	"github.com/andrew-torda/qcontact/pkg/natcon"
)

// usage
func usage() int {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts] ref.pdb")
	flag.PrintDefaults()
	return (ExitUsageError)
}

func main() {
	var flags natcon.CmdFlag
	outfile := "-"
	flag.Float64Var(&flags.Cutoff, "c", 6.0, "distance cutoff for a contact")
	flag.StringVar(&flags.Method, "m", "1", "method, 1 or contact_matrix")
	flag.StringVar(&flags.Names, "a", "", "comma separated atom names, default all")
	flag.BoolVar(&flags.NoNorm, "N", false, "do not renumber residues from 1")
	flag.BoolVar(&flags.KeepH, "H", false, "keep hydrogens")
	flag.BoolVar(&flags.Detail, "d", false, "write atom details instead of the log table")
	flag.StringVar(&flags.LogFile, "l", "", "log file, or stdout")
	flag.IntVar(&flags.Vbsty, "v", 0, "verbosity")
	flag.StringVar(&outfile, "o", "", "output file name, default stdout")

	flag.Parse()

	reffile := flag.Arg(0)
	if reffile == "" || flag.NArg() != 1 {
		os.Exit(usage())
	}
	if err := natcon.Mymain(&flags, reffile, outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	} else {
		os.Exit(ExitSuccess)
	}
}
