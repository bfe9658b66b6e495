// 13 Oct 2026

package tpr

import (
	"github.com/andrew-torda/qcontact/pdb"
	"github.com/andrew-torda/qcontact/pkg/bias"
	"github.com/andrew-torda/qcontact/pkg/common"
	"github.com/andrew-torda/qcontact/pkg/resdist"
)

// CmdFlag is the command line flags after parsing
type CmdFlag struct {
	Cutoff   float64
	N        int    // number of predictions to use, 0 for all
	Cols     [2]int // residue columns in the prediction file, from 0
	SkipRows int    // header lines, < 0 to guess
	MinSep   int
	NoFilter bool
	ResRange [2]int
	KeepH    bool
	LogFile  string
	Vbsty    int
}

// Mymain reads the reference and the predictions and writes the TPR
// log to outfile.
func Mymain(flags *CmdFlag, reffile, biasfile, outfile string) error {
	lg, err := common.LogWhere(flags.LogFile)
	if err != nil {
		return err
	}
	bopts := bias.DefaultOptions()
	bopts.Cols = flags.Cols
	bopts.SkipRows = flags.SkipRows
	bopts.Filter = !flags.NoFilter
	if flags.MinSep > 0 {
		bopts.MinSep = flags.MinSep
	}
	bopts.ResRange = flags.ResRange
	bopts.N = flags.N
	pairs, err := bias.ReadFile(biasfile, bopts)
	if err != nil {
		return err
	}
	ref, err := pdb.ReadFirst(reffile)
	if err != nil {
		return err
	}
	ropts := resdist.DefaultOptions()
	ropts.IgnoreH = !flags.KeepH
	sd, _, s := resdist.ForSelection(ref, ropts)
	cutoff := flags.Cutoff
	if cutoff <= 0 {
		cutoff = 6.0
	}
	res, err := Compute(sd, resdist.MinResID(s), pairs, cutoff, flags.N)
	if err != nil {
		return err
	}
	res.SetNRes(len(ref.Residues()))
	if flags.Vbsty > 0 {
		lg.Println(biasfile, len(pairs), "pairs,", res.NRes, "residues, TPR at", res.Opt, "is", res.OptTPR)
	}
	w, closer, err := common.OutWriter(outfile)
	if err != nil {
		return err
	}
	err = res.WriteLog(w)
	if e := closer(); err == nil {
		err = e
	}
	return err
}
