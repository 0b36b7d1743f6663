package input

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"go.dw1.io/mmapfile"
)

// maxLine bounds a single line on the buffered fallback path.
const maxLine = 16 << 20

// Source is a named stream of lines backed by a memory map or a plain reader.
type Source struct {
	name string
	mm   *mmapfile.MmapFile
	rd   io.Reader
	os   *os.File
}

// Open maps name into memory when possible and otherwise opens it with
// os.Open.
func Open(name string) (*Source, error) {
	if mf, err := mmapfile.Open(name); err == nil {
		return &Source{name: name, mm: mf}, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	return &Source{name: name, rd: f, os: f}, nil
}

// FromReader wraps r, for example os.Stdin. Close does not close r.
func FromReader(name string, r io.Reader) *Source {
	return &Source{name: name, rd: r}
}

// Name returns the name the source was opened with.
func (s *Source) Name() string {
	return s.name
}

// Mapped reports whether the source is served from a memory map.
func (s *Source) Mapped() bool {
	return s.mm != nil
}

// Lines calls fn for every line with its 1-based number. The trailing "\n"
// and an optional "\r" before it are stripped. Iteration stops at the first
// error returned by fn.
func (s *Source) Lines(fn func(n int, line string) error) error {
	if s.mm != nil {
		return eachLine(s.mm.Bytes(), fn)
	}

	sc := bufio.NewScanner(s.rd)
	sc.Buffer(make([]byte, 0, 64<<10), maxLine)
	n := 0
	for sc.Scan() {
		n++
		if err := fn(n, string(bytes.TrimSuffix(sc.Bytes(), []byte{'\r'}))); err != nil {
			return err
		}
	}

	return sc.Err()
}

func eachLine(data []byte, fn func(int, string) error) error {
	for n := 1; len(data) > 0; n++ {
		line := data
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, data = data[:i], data[i+1:]
		} else {
			data = nil
		}

		if err := fn(n, string(bytes.TrimSuffix(line, []byte{'\r'}))); err != nil {
			return err
		}
	}

	return nil
}

// Close releases the memory map or file. Sources built with FromReader have
// nothing to release.
func (s *Source) Close() error {
	if s.mm != nil {
		return s.mm.Close()
	}
	if s.os != nil {
		return s.os.Close()
	}

	return nil
}
