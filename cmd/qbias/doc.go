// 13 Oct 2026
/*

qbias reads a list of predicted residue contacts and, for each frame of a trajectory, writes the fraction that are formed. A pair i, j is formed if the alpha carbons of residues i and j are within the cutoff.

Usage:
 qbias [options] contacts.txt mobile...

The mobile structures are read as for qnative. Residue i is taken to be the i'th alpha carbon.

Flags:
  -c cutoff
    	Default 6.
  -norm bias|self
    	bias: count / number of pairs.
    	self: (count + n) / (number of pairs + n), where n is the number
    	of alpha carbons. This counts each residue as in contact with
    	itself and is never zero.
  -F, -i, -j, -n, -s
    	Reading the contact file, as for tpr.
  -start, -stop, -step, -p, -w
    	As for qnative.

*/
package main
