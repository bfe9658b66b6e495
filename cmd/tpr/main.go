// 13 Oct 2026

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	. "github.com/andrew-torda/qcontact/pkg/common"
	"github.com/andrew-torda/qcontact/pkg/tpr"
)

// usage
func usage() int {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts] ref.pdb contacts.txt")
	flag.PrintDefaults()
	return (ExitUsageError)
}

func main() {
	var flags tpr.CmdFlag
	outfile := "-"
	flag.Float64Var(&flags.Cutoff, "c", 6.0, "distance cutoff for a true contact")
	flag.IntVar(&flags.N, "n", 0, "number of ranked contacts to use, default all")
	flag.IntVar(&flags.Cols[0], "i", 0, "column of first residue, from 0")
	flag.IntVar(&flags.Cols[1], "j", 1, "column of second residue, from 0")
	flag.IntVar(&flags.SkipRows, "s", -1, "header lines to skip, guessed by default")
	flag.IntVar(&flags.MinSep, "sep", 4, "drop pairs closer than this in sequence")
	flag.BoolVar(&flags.NoFilter, "F", false, "do not drop pairs close in sequence")
	flag.IntVar(&flags.ResRange[0], "rmin", 0, "lowest residue to keep")
	flag.IntVar(&flags.ResRange[1], "rmax", 0, "highest residue to keep")
	flag.BoolVar(&flags.KeepH, "H", false, "keep hydrogens")
	flag.StringVar(&flags.LogFile, "l", "", "log file, or stdout")
	flag.IntVar(&flags.Vbsty, "v", 0, "verbosity")
	flag.StringVar(&outfile, "o", "", "output file name, default stdout")

	flag.Parse()

	reffile := flag.Arg(0)
	biasfile := flag.Arg(1)
	if reffile == "" || biasfile == "" {
		os.Exit(usage())
	}
	if err := tpr.Mymain(&flags, reffile, biasfile, outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	} else {
		os.Exit(ExitSuccess)
	}
}
