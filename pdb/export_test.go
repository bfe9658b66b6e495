package pdb

// Export some internal functions for testing

var OldOrMmcif = oldOrMmcif
var ReadFmt = readFmt

const (
	Old_fmt   = oldFmt
	Mmcif_fmt = mmcifFmt
)
