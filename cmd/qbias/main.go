// 13 Oct 2026

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	. "github.com/andrew-torda/qcontact/pkg/common"
	"github.com/andrew-torda/qcontact/pkg/qbias"
)

// usage
func usage() int {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts] contacts.txt traj.pdb | top.pdb traj.dcd | f1.pdb f2.pdb ...")
	flag.PrintDefaults()
	return (ExitUsageError)
}

func main() {
	var flags qbias.CmdFlag
	outfile := "-"
	flag.Float64Var(&flags.Cutoff, "c", 6.0, "CA distance cutoff")
	flag.StringVar(&flags.Norm, "norm", "bias", "bias, or self to count self contacts")
	flag.IntVar(&flags.Cols[0], "i", 0, "column of first residue, from 0")
	flag.IntVar(&flags.Cols[1], "j", 1, "column of second residue, from 0")
	flag.IntVar(&flags.SkipRows, "s", -1, "header lines to skip, guessed by default")
	flag.BoolVar(&flags.NoFilter, "F", false, "do not drop pairs close in sequence")
	flag.IntVar(&flags.N, "n", 0, "number of contacts to use, default all")
	flag.IntVar(&flags.Range.Start, "start", 0, "first frame")
	flag.IntVar(&flags.Range.Stop, "stop", 0, "stop before this frame, 0 for the end")
	flag.IntVar(&flags.Range.Step, "step", 1, "frame step")
	flag.IntVar(&flags.NWorker, "w", 0, "number of workers, default one per CPU")
	flag.BoolVar(&flags.Progress, "p", false, "show progress on stderr")
	flag.StringVar(&flags.LogFile, "l", "", "log file, or stdout")
	flag.IntVar(&flags.Vbsty, "v", 0, "verbosity")
	flag.StringVar(&outfile, "o", "", "output file name, default stdout")

	flag.Parse()

	if flag.NArg() < 2 {
		os.Exit(usage())
	}
	if err := qbias.Mymain(&flags, flag.Arg(0), flag.Args()[1:], outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	} else {
		os.Exit(ExitSuccess)
	}
}
