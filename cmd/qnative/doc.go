// 13 Oct 2026
/*

qnative finds the contacts in a reference structure and, for each frame of a trajectory, writes the fraction of them that are formed.

Usage:
 qnative [options] ref.pdb mobile...

The mobile structures can be
 - one PDB or mmcif file, each model is a frame
 - a topology PDB file and a .dcd trajectory
 - a list of PDB or mmcif files, each is a frame

Flags:
  -a names
    	Atom names, default CA. Two atoms are a reference contact if
    	they are within the radius in the reference. An atom is in
    	contact with itself.
  -m method
    	radius_cut: formed if r <= radius.
    	hard_cut: formed if r <= the reference distance.
    	soft_cut: 1/(1 + exp(beta (r - lambda r0))).
  -beta, -lambda
    	Parameters for soft_cut. Defaults 5 and 1.8.
  -r radius
    	Default 6.
  -start, -stop, -step
    	Frames to use, like a python slice.
  -N	Do not renumber residues.
  -p	Show progress on stderr.
  -w N	Number of workers.

Output has the frame number, the time in ps if the trajectory has one, and Q.

*/
package main
