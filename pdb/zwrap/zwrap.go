// Package zwrap opens coordinate files for reading. Compressed files are
// wrapped so that upon calling Close, the decompressor will be closed,
// followed by the underlying file. Plain files are memory mapped, since
// trajectories can be big and we read them front to back once.

package zwrap

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

const (
	gzMagic0 = 0x1f
	gzMagic1 = 0x8b
)

// gzFile reads through a decompressor. Close shuts the decompressor,
// then whatever is underneath.
type gzFile struct {
	*gzip.Reader
	under io.Closer
}

func (g *gzFile) Close() error {
	return errors.Join(g.Reader.Close(), g.under.Close())
}

// plain is a buffered reader on something we still have to close.
type plain struct {
	io.Reader
	io.Closer
}

// isGzip looks at the magic number.
func isGzip(b []byte) bool {
	return len(b) > 1 && b[0] == gzMagic0 && b[1] == gzMagic1
}

// sniff peeks at the start of a stream and puts a decompressor in
// front of it if it is gzipped. Streams too short to peek at are
// passed through.
func sniff(rc io.ReadCloser, fname string) (io.ReadCloser, error) {
	br := bufio.NewReader(rc)
	if magic, err := br.Peek(2); err != nil || !isGzip(magic) {
		return plain{br, rc}, nil
	}
	z, err := gzip.NewReader(br)
	if err != nil {
		rc.Close()
		return nil, errors.New("reading " + fname + " " + err.Error())
	}
	return &gzFile{Reader: z, under: rc}, nil
}

// mapped is a file we have memory mapped. The reader walks over the
// mapping. Close unmaps, then closes the file.
type mapped struct {
	*bytes.Reader
	mm mmap.MMap
	fp *os.File
}

func (m *mapped) Close() error {
	return errors.Join(m.mm.Unmap(), m.fp.Close())
}

// Bytes gives the whole mapping. It is only valid until Close.
func (m *mapped) Bytes() []byte { return m.mm }

// Open opens fname for reading. A gzipped file gets a decompressing
// reader. Anything else is mapped into memory. If mapping fails, which
// happens for empty files and things like pipes, we fall back to
// reading the file.
func Open(fname string) (io.ReadCloser, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	fi, err := fp.Stat()
	if err != nil {
		fp.Close()
		return nil, err
	}
	if fi.IsDir() {
		fp.Close()
		return nil, errors.New(fname + " is a directory")
	}
	if fi.Size() == 0 || !fi.Mode().IsRegular() {
		return sniff(fp, fname)
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return sniff(fp, fname)
	}
	m := &mapped{Reader: bytes.NewReader(mm), mm: mm, fp: fp}
	if isGzip(mm) {
		return sniff(m, fname)
	}
	return m, nil
}

// MapFile gives the whole contents of a file. Plain files are mapped
// and the returned function unmaps them. Compressed files are read
// into memory.
func MapFile(fname string) ([]byte, func() error, error) {
	rdr, err := Open(fname)
	if err != nil {
		return nil, nil, err
	}
	if m, ok := rdr.(*mapped); ok {
		return m.Bytes(), m.Close, nil
	}
	defer rdr.Close()
	b, err := io.ReadAll(rdr)
	if err != nil {
		return nil, nil, err
	}
	return b, func() error { return nil }, nil
}
