// Package mmcif reads atoms from a file in mmcif/cif format.
//
// mmcif files are big, but we only want the _atom_site loop from them.
// Some features of the format make this simpler.
// 1. The first character on the line is decisive. If it is a data item
// it has to be a "_". A loop starts with loop_.
// 2. Within the atom table, one row is one atom. The pdb writes one row
// per line, but we accept rows broken over lines.
// Column order is read from the loop headers, so we do not care what
// order the columns come in.

// Notes about the mmcif format...
// A question mark, ?, means a missing value.
// A dot, ., means not appropriate or deliberately left out.
// There are two sets of names and numbers. label_ are the pdb's own and
// auth_ are the ones from the authors, which match old pdb files. We
// take auth_ values when they are there and fall back to label_.
// Multiple models are marked by pdbx_PDB_model_num.
package mmcif
