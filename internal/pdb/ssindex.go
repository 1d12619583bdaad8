package pdb

import "strconv"

// residueKey identifies one residue within the structure.
type residueKey struct {
	chain  string
	number int
}

// ssIndex maps residues to the structural class declared by HELIX/SHEET
// records. It lives only for the duration of one Parse call.
type ssIndex map[residueKey]SecondaryStructure

// HELIX and SHEET column offsets, per the PDB format spec.
// https://www.wwpdb.org/documentation/file-format-content/format23/sect5.html
const (
	helixChainCol = 19
	helixStartLo  = 21
	helixStartHi  = 25
	helixEndLo    = 33
	helixEndHi    = 37
	sheetChainCol = 21
	sheetStartLo  = 22
	sheetStartHi  = 26
	sheetEndLo    = 33
	sheetEndHi    = 37
)

// add records class for every residue in [start, end] on the given chain.
// Helix has priority over sheet: once a residue is assigned, later records
// never overwrite it. A malformed range skips that single record.
func (idx ssIndex) add(line []byte, chainCol, startLo, startHi, endLo, endHi int, class SecondaryStructure) {
	chain := field(line, chainCol, chainCol+1)
	start, err := strconv.Atoi(field(line, startLo, startHi))
	if err != nil {
		return
	}
	end, err := strconv.Atoi(field(line, endLo, endHi))
	if err != nil {
		return
	}
	for n := start; n <= end; n++ {
		key := residueKey{chain: chain, number: n}
		if _, ok := idx[key]; !ok {
			idx[key] = class
		}
	}
}

// buildSSIndex runs the first pass over the input: helix records first, then
// sheet records, so helix wins when ranges overlap.
func buildSSIndex(data []byte) ssIndex {
	idx := make(ssIndex)
	forEachLine(data, func(line []byte) {
		if classify(line) == recordHelix {
			idx.add(line, helixChainCol, helixStartLo, helixStartHi, helixEndLo, helixEndHi, Helix)
		}
	})
	forEachLine(data, func(line []byte) {
		if classify(line) == recordSheet {
			idx.add(line, sheetChainCol, sheetStartLo, sheetStartHi, sheetEndLo, sheetEndHi, Sheet)
		}
	})
	return idx
}
