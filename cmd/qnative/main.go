// 13 Oct 2026

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	. "github.com/andrew-torda/qcontact/pkg/common"
	"github.com/andrew-torda/qcontact/pkg/qnative"
)

// usage
func usage() int {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts] ref.pdb traj.pdb | top.pdb traj.dcd | f1.pdb f2.pdb ...")
	flag.PrintDefaults()
	return (ExitUsageError)
}

func main() {
	var flags qnative.CmdFlag
	outfile := "-"
	flag.StringVar(&flags.Method, "m", "radius_cut", "radius_cut, soft_cut or hard_cut")
	flag.Float64Var(&flags.Radius, "r", 6.0, "contact radius in the reference")
	flag.Float64Var(&flags.Beta, "beta", 5.0, "soft_cut steepness")
	flag.Float64Var(&flags.Lambda, "lambda", 1.8, "soft_cut tolerance")
	flag.StringVar(&flags.Names, "a", "CA", "comma separated atom names")
	flag.IntVar(&flags.Range.Start, "start", 0, "first frame")
	flag.IntVar(&flags.Range.Stop, "stop", 0, "stop before this frame, 0 for the end")
	flag.IntVar(&flags.Range.Step, "step", 1, "frame step")
	flag.BoolVar(&flags.NoNorm, "N", false, "do not renumber residues")
	flag.IntVar(&flags.NWorker, "w", 0, "number of workers, default one per CPU")
	flag.BoolVar(&flags.Progress, "p", false, "show progress on stderr")
	flag.StringVar(&flags.LogFile, "l", "", "log file, or stdout")
	flag.IntVar(&flags.Vbsty, "v", 0, "verbosity")
	flag.StringVar(&outfile, "o", "", "output file name, default stdout")

	flag.Parse()

	if flag.NArg() < 2 {
		os.Exit(usage())
	}
	reffile := flag.Arg(0)
	if err := qnative.Mymain(&flags, reffile, flag.Args()[1:], outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	} else {
		os.Exit(ExitSuccess)
	}
}
