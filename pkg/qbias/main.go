// 13 Oct 2026

// Package qbias is the guts of the qbias command. It follows the
// fraction of predicted contacts formed along a trajectory.
package qbias

import (
	"io"
	"os"

	"github.com/andrew-torda/qcontact/pkg/bias"
	"github.com/andrew-torda/qcontact/pkg/common"
	"github.com/andrew-torda/qcontact/pkg/qvalue"
	"github.com/andrew-torda/qcontact/traj"
)

// CmdFlag is the command line flags after parsing
type CmdFlag struct {
	Cutoff   float64
	Norm     string // "bias" or "self"
	Cols     [2]int
	SkipRows int
	NoFilter bool
	N        int
	Range    traj.Range
	NWorker  int
	Progress bool
	LogFile  string
	Vbsty    int
}

// Mymain reads the predicted pairs and the trajectory and writes the
// Q series to outfile.
func Mymain(flags *CmdFlag, biasfile string, trajfiles []string, outfile string) error {
	mode, err := qvalue.ParseNorm(flags.Norm)
	if err != nil {
		return err
	}
	lg, err := common.LogWhere(flags.LogFile)
	if err != nil {
		return err
	}
	bopts := bias.DefaultOptions()
	bopts.Cols = flags.Cols
	bopts.SkipRows = flags.SkipRows
	bopts.Filter = !flags.NoFilter
	bopts.N = flags.N
	bc, err := bias.ReadFile(biasfile, bopts)
	if err != nil {
		return err
	}
	t, err := traj.Open(trajfiles...)
	if err != nil {
		return err
	}
	if c, ok := t.(io.Closer); ok {
		defer c.Close()
	}
	o := qvalue.DefaultQbiasOpts()
	if flags.Cutoff > 0 {
		o.Cutoff = flags.Cutoff
	}
	o.Mode = mode
	o.Range = flags.Range
	o.NWorker = flags.NWorker
	if flags.Progress {
		o.Progress = os.Stderr
	}
	ser, _, err := qvalue.Qbias(t, bc, o)
	if err != nil {
		return err
	}
	if flags.Vbsty > 0 {
		lg.Printf("%d bias pairs, %d frames, average qbias %.3f", len(bc), ser.Len(), ser.Mean())
	}
	w, closer, err := common.OutWriter(outfile)
	if err != nil {
		return err
	}
	_, err = ser.WriteTo(w)
	if e := closer(); err == nil {
		err = e
	}
	return err
}
