// 13 Oct 2026

// Package qnative is the guts of the qnative command. It follows the
// fraction of reference contacts formed along a trajectory.
package qnative

import (
	"io"
	"os"

	"github.com/andrew-torda/qcontact/pdb"
	"github.com/andrew-torda/qcontact/pkg/common"
	"github.com/andrew-torda/qcontact/pkg/qvalue"
	"github.com/andrew-torda/qcontact/traj"
)

// CmdFlag is the command line flags after parsing
type CmdFlag struct {
	Method   string
	Radius   float64
	Beta     float64
	Lambda   float64
	Names    string // atom names for both groups, default CA
	Range    traj.Range
	NoNorm   bool
	NWorker  int
	Progress bool // frame counts on stderr
	LogFile  string
	Vbsty    int
}

// opts turns flags into options. Zero numbers keep the defaults.
func opts(flags *CmdFlag) (qvalue.QnativeOpts, error) {
	o := qvalue.DefaultQnativeOpts()
	if flags.Method != "" {
		m, err := qvalue.ParseMethod(flags.Method)
		if err != nil {
			return o, err
		}
		o.Method = m
	}
	for _, p := range []struct{ from, to *float64 }{
		{&flags.Radius, &o.Radius}, {&flags.Beta, &o.Beta}, {&flags.Lambda, &o.Lambda}} {
		if *p.from > 0 {
			*p.to = *p.from
		}
	}
	if names := common.SplitList(flags.Names); names != nil {
		o.Sel1.Names = names
		o.Sel2.Names = names
	}
	o.Range = flags.Range
	o.Norm = !flags.NoNorm
	o.NWorker = flags.NWorker
	if flags.Progress {
		o.Progress = os.Stderr
	}
	return o, nil
}

// Mymain reads the reference and the trajectory and writes the Q
// series to outfile.
func Mymain(flags *CmdFlag, reffile string, trajfiles []string, outfile string) error {
	o, err := opts(flags)
	if err != nil {
		return err
	}
	lg, err := common.LogWhere(flags.LogFile)
	if err != nil {
		return err
	}
	ref, err := pdb.ReadFirst(reffile)
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
	ser, err := qvalue.Qnative(t, ref, o)
	if err != nil {
		return err
	}
	if flags.Vbsty > 0 {
		lg.Printf("%d frames, %v, average qnative %.3f", ser.Len(), o.Method, ser.Mean())
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
