// Package input opens text sources for line-oriented scanning.
//
// Regular files are memory-mapped through [mmapfile] so lines can be sliced
// without copying; when mmap is unavailable or unsuitable (empty files,
// pipes, unsupported platforms) the package falls back to a buffered
// [os.File] reader.
package input
