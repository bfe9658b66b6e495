// 12 Oct 2026

package natcon

import (
	"fmt"
	"io"

	"github.com/andrew-torda/qcontact/pdb"
	"github.com/andrew-torda/qcontact/pkg/common"
)

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	Cutoff  float64
	Method  string
	Names   string // comma separated atom names, "" for all
	NoNorm  bool
	KeepH   bool
	Detail  bool   // write the atom details, not the log table
	LogFile string // "", "stdout" or a file name for chatter
	Vbsty   int
}

// optsFromFlags converts what came from the command line.
func optsFromFlags(flags *CmdFlag) (Options, error) {
	opts := DefaultOptions()
	if flags.Cutoff > 0 {
		opts.Cutoff = flags.Cutoff
	}
	if flags.Method != "" {
		m, err := ParseMethod(flags.Method)
		if err != nil {
			return opts, err
		}
		opts.Method = m
	}
	opts.Norm = !flags.NoNorm
	opts.IgnoreH = !flags.KeepH
	opts.Sel.Names = common.SplitList(flags.Names)
	opts.Vbsty = flags.Vbsty
	return opts, nil
}

// writeDetail writes one line per contact with the atoms that made it.
func writeDetail(w io.Writer, det []Detail) error {
	if _, err := fmt.Fprintln(w, "#RESi\tRESj\tATOMi\tATOMj\tNAMEi\tNAMEj\tdist"); err != nil {
		return err
	}
	for _, d := range det {
		_, err := fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%s\t%s\t%.3f\n", d.I, d.J,
			d.AtomPair[0], d.AtomPair[1], d.NamePair[0], d.NamePair[1], d.Dist)
		if err != nil {
			return err
		}
	}
	return nil
}

// Mymain reads a reference structure, finds native contacts and
// writes them to outfile.
func Mymain(flags *CmdFlag, reffile, outfile string) error {
	opts, err := optsFromFlags(flags)
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
	pairs, det, err := Native(ref, opts)
	if err != nil {
		return err
	}
	if opts.Vbsty > 0 {
		lg.Println(reffile, ref.Len(), "atoms", len(pairs), "native contacts")
	}
	w, closer, err := common.OutWriter(outfile)
	if err != nil {
		return err
	}
	if flags.Detail {
		err = writeDetail(w, det)
	} else {
		err = WriteLog(w, ref, pairs, opts)
	}
	if e := closer(); err == nil {
		err = e
	}
	return err
}
