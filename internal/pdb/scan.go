package pdb

import (
	"bytes"
	"strings"
)

// recordKind classifies a raw line by its record tag. Field contents are not
// interpreted at this stage.
type recordKind int

const (
	recordIgnored recordKind = iota
	recordAtom
	recordHetatm
	recordHelix
	recordSheet
)

var (
	tagAtom   = []byte("ATOM ")
	tagHetatm = []byte("HETATM")
	tagHelix  = []byte("HELIX ")
	tagSheet  = []byte("SHEET ")
)

// classify returns the record kind for a raw line. Unrecognized lines are
// recordIgnored; the format is fixed-column text from a third-party archive
// and is not guaranteed to be complete or well-formed, so there is no error
// path here.
func classify(line []byte) recordKind {
	switch {
	case bytes.HasPrefix(line, tagAtom):
		return recordAtom
	case bytes.HasPrefix(line, tagHetatm):
		return recordHetatm
	case bytes.HasPrefix(line, tagHelix):
		return recordHelix
	case bytes.HasPrefix(line, tagSheet):
		return recordSheet
	default:
		return recordIgnored
	}
}

// forEachLine calls fn for every non-empty line in data, splitting on both
// \n and \r. The callback receives a subslice of data; no per-line string is
// allocated.
func forEachLine(data []byte, fn func(line []byte)) {
	start := 0
	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' || data[i] == '\r' {
			if i > start {
				fn(data[start:i])
			}
			start = i + 1
		}
	}
}

// field extracts the half-open column range [start, end) from a line and
// trims surrounding whitespace. Short lines yield empty fields, which fail
// numeric parsing downstream and cause the record to be skipped.
func field(line []byte, start, end int) string {
	if start >= len(line) {
		return ""
	}
	if end > len(line) {
		end = len(line)
	}
	return strings.TrimSpace(string(line[start:end]))
}
