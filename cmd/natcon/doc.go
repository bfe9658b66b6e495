// 12 Oct 2026
/*

natcon lists the native contacts of a reference structure. Two residues are in contact if any pair of their atoms is within the cutoff and the residues are more than three apart in sequence.

Usage:
 natcon [options] ref.pdb

Flags:
  -a names
    	Comma separated list of atom names to use, like CA,CB. The
    	default is every heavy atom of the protein.
  -c cutoff
    	Distance cutoff in Angstrom. Default 6.
  -d	Write one line per contact with the atoms and the distance,
    	instead of the contact table.
  -H	Keep hydrogens.
  -l filename
    	Where to send chatter. "stdout" or a file name.
  -m method
    	Contact method. "1" or "contact_matrix" is the only one that
    	works. "2" or "shadow_map" gives an error.
  -N	Do not renumber residues. Normally they are renumbered from 1.
  -o filename
    	Write output to filename. Default is standard output.

The structure file may be old PDB format or mmcif, maybe gzipped. Only the first model is read.

The output table has residue numbers and, for each residue, the serial number of its alpha carbon (N1 or N3 for nucleic acids), so contacts can be found in the original file.

*/
package main
