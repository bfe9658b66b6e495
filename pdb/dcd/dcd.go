// 12 Oct 2026

// Package dcd reads CHARMM / NAMD style DCD trajectories. The whole
// file is mapped into memory and frames are decoded on request, so
// jumping around a trajectory costs nothing.
// We only handle little endian files with 32 bit record markers, which
// is what everybody writes today. Fixed atoms and 4-D coordinates are
// rejected. A unit cell block in front of each frame is skipped.
package dcd

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/andrew-torda/qcontact/pdb/cmmn"
	"github.com/andrew-torda/qcontact/pdb/zwrap"
)

const (
	hdrLen   = 84 // first record: "CORD" + 20 ints
	titleLen = 80
	cellLen  = 48 // six doubles
	akmaPs   = 0.04888821
)

var (
	ErrFormat  = errors.New("dcd: broken file")
	ErrEndian  = errors.New("dcd: endianness probably wrong")
	ErrFixed   = errors.New("dcd: fixed atoms not supported")
	ErrFourDim = errors.New("dcd: 4-D coordinates not supported")
	ErrFrame   = errors.New("dcd: frame out of range")
)

var le = binary.LittleEndian

// Dcd is an open trajectory.
type Dcd struct {
	data      []byte
	unmap     func() error
	natoms    int
	nframe    int
	istart    int
	nsavc     int
	delta     float32
	cell      bool // unit cell block before each frame
	first     int  // offset of first frame
	frameSize int
	Title     string
}

// Open maps fname and reads the header.
func Open(fname string) (*Dcd, error) {
	data, unmap, err := zwrap.MapFile(fname)
	if err != nil {
		return nil, err
	}
	d, err := parse(data)
	if err != nil {
		unmap()
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	d.unmap = unmap
	return d, nil
}

// rec checks a fortran record starting at off, and returns the start
// of its contents and the offset after it.
func rec(data []byte, off, want int) (int, int, error) {
	if off+4 > len(data) {
		return 0, 0, ErrFormat
	}
	n := int(int32(le.Uint32(data[off:])))
	if want >= 0 && n != want {
		return 0, 0, fmt.Errorf("record at %d has length %d, wanted %d: %w", off, n, want, ErrFormat)
	}
	end := off + 4 + n
	if n < 0 || end+4 > len(data) || int(int32(le.Uint32(data[end:]))) != n {
		return 0, 0, fmt.Errorf("record at %d not terminated: %w", off, ErrFormat)
	}
	return off + 4, end + 4, nil
}

func i32(b []byte, off int) int { return int(int32(le.Uint32(b[off:]))) }

// parse reads the three header records.
func parse(data []byte) (*Dcd, error) {
	if len(data) < 4 {
		return nil, ErrFormat
	}
	if i32(data, 0) != hdrLen {
		if binary.BigEndian.Uint32(data) == hdrLen {
			return nil, ErrEndian
		}
		return nil, ErrFormat
	}
	start, off, err := rec(data, 0, hdrLen)
	if err != nil {
		return nil, err
	}
	hdr := data[start : start+hdrLen]
	if string(hdr[:4]) != "CORD" {
		return nil, fmt.Errorf("wrong magic number: %w", ErrFormat)
	}
	icntrl := hdr[4:]
	d := &Dcd{
		nframe: i32(icntrl, 0),
		istart: i32(icntrl, 4),
		nsavc:  i32(icntrl, 8),
	}
	if i32(icntrl, 32) != 0 {
		return nil, ErrFixed
	}
	charmm := i32(icntrl, 76) != 0
	if charmm {
		d.delta = math.Float32frombits(le.Uint32(icntrl[36:]))
		d.cell = i32(icntrl, 40) != 0
		if i32(icntrl, 44) != 0 {
			return nil, ErrFourDim
		}
	} else { // x-plor stores a double here
		d.delta = float32(math.Float64frombits(le.Uint64(icntrl[36:])))
	}

	start, next, err := rec(data, off, -1)
	if err != nil {
		return nil, err
	}
	if ntitle := i32(data, start); ntitle > 0 && start+4+ntitle*titleLen <= next-4 {
		d.Title = string(data[start+4 : start+4+ntitle*titleLen])
	}
	off = next

	start, off, err = rec(data, off, 4)
	if err != nil {
		return nil, err
	}
	d.natoms = i32(data, start)
	if d.natoms <= 0 {
		return nil, fmt.Errorf("%d atoms: %w", d.natoms, ErrFormat)
	}
	d.first = off
	d.frameSize = 3 * (8 + 4*d.natoms)
	if d.cell {
		d.frameSize += 8 + cellLen
	}
	if n := (len(data) - d.first) / d.frameSize; n < d.nframe || d.nframe == 0 {
		d.nframe = n // header is often wrong after a crashed run
	}
	d.data = data
	return d, nil
}

// NAtom returns the number of atoms per frame.
func (d *Dcd) NAtom() int { return d.natoms }

// Len returns the number of frames.
func (d *Dcd) Len() int { return d.nframe }

// Delta is the time step in the file, in AKMA units.
func (d *Dcd) Delta() float64 { return float64(d.delta) }

// Dt is the time between saved frames in ps.
func (d *Dcd) Dt() float64 {
	nsavc := d.nsavc
	if nsavc == 0 {
		nsavc = 1
	}
	return float64(d.delta) * float64(nsavc) * akmaPs
}

// Frame decodes frame i into xyz, which must have room for NAtom atoms.
func (d *Dcd) Frame(i int, xyz []cmmn.Xyz) error {
	if i < 0 || i >= d.nframe {
		return fmt.Errorf("frame %d of %d: %w", i, d.nframe, ErrFrame)
	}
	if len(xyz) < d.natoms {
		return fmt.Errorf("dcd: room for %d atoms, need %d", len(xyz), d.natoms)
	}
	off := d.first + i*d.frameSize
	var err error
	if d.cell {
		if _, off, err = rec(d.data, off, cellLen); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	for dim := 0; dim < 3; dim++ {
		var start int
		if start, off, err = rec(d.data, off, 4*d.natoms); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		b := d.data[start:]
		for j := 0; j < d.natoms; j++ {
			x := float64(math.Float32frombits(le.Uint32(b[4*j:])))
			switch dim {
			case 0:
				xyz[j].X = x
			case 1:
				xyz[j].Y = x
			default:
				xyz[j].Z = x
			}
		}
	}
	return nil
}

// Close releases the mapping.
func (d *Dcd) Close() error {
	if d.unmap == nil {
		return nil
	}
	err := d.unmap()
	d.unmap, d.data = nil, nil
	return err
}

// Write writes frames in CHARMM format with no unit cell. Every frame
// must have the same number of atoms. delta is in AKMA units.
func Write(w io.Writer, frames [][]cmmn.Xyz, delta float32) error {
	if len(frames) == 0 || len(frames[0]) == 0 {
		return errors.New("dcd: nothing to write")
	}
	n := len(frames[0])
	var buf []byte
	put := func(v uint32) { buf = le.AppendUint32(buf, v) }

	put(hdrLen)
	buf = append(buf, "CORD"...)
	icntrl := make([]uint32, 20)
	icntrl[0] = uint32(len(frames))
	icntrl[2] = 1
	icntrl[3] = uint32(len(frames))
	icntrl[9] = math.Float32bits(delta)
	icntrl[19] = 24 // charmm version
	for _, v := range icntrl {
		put(v)
	}
	put(hdrLen)

	title := make([]byte, titleLen)
	copy(title, "written by qcontact")
	put(4 + titleLen)
	put(1)
	buf = append(buf, title...)
	put(4 + titleLen)

	put(4)
	put(uint32(n))
	put(4)

	for i, f := range frames {
		if len(f) != n {
			return fmt.Errorf("dcd: frame %d has %d atoms, wanted %d", i, len(f), n)
		}
		for dim := 0; dim < 3; dim++ {
			put(uint32(4 * n))
			for _, a := range f {
				x := a.X
				if dim == 1 {
					x = a.Y
				} else if dim == 2 {
					x = a.Z
				}
				put(math.Float32bits(float32(x)))
			}
			put(uint32(4 * n))
		}
	}
	_, err := w.Write(buf)
	return err
}
