// 13 Oct 2026
/*

tpr reads a ranked list of predicted contacts, like DCA output, and says how many are right. After the first k predictions, the true positive rate is the percentage of those k whose residues are within the cutoff in the reference structure.

Usage:
 tpr [options] ref.pdb contacts.txt

Flags:
  -c cutoff
    	Residues are in contact if their closest heavy atoms are within
    	cutoff Angstrom. Default 6.
  -F	Keep every pair. Normally pairs with |i-j| < sep are dropped.
  -H	Keep hydrogens in the reference.
  -i N, -j N
    	Columns holding the two residue numbers, counting from 0.
  -n N	Use only the first N predictions, after filtering.
  -o filename
    	Write output to filename. Default is standard output.
  -rmin N, -rmax N
    	Only keep pairs with both residues in this range.
  -s N	Skip N header lines. By default, lines at the top that do not
    	have integers in the residue columns are skipped.
  -sep N
    	Sequence separation for filtering. Default 4.

Residues of the reference are renumbered from 1, so the prediction file should number them from 1 too.

The output lists the ten best values under 100 %, the value at 0.75 times the number of residues (rounded up to a multiple of 5) and then the full series.

*/
package main
