package pdb

import (
	"math"
	"strconv"
	"unicode"
)

// ATOM/HETATM column offsets.
// https://www.wwpdb.org/documentation/file-format-content/format23/sect9.html#ATOM
const (
	atomNameLo    = 12
	atomNameHi    = 16
	atomResLo     = 17
	atomResHi     = 20
	atomChainCol  = 21
	atomResNumLo  = 22
	atomResNumHi  = 26
	atomXLo       = 30
	atomXHi       = 38
	atomYLo       = 38
	atomYHi       = 46
	atomZLo       = 46
	atomZHi       = 54
	atomElementLo = 76
	atomElementHi = 78
)

// extractAtom parses one coordinate record. It returns false when any of the
// three coordinates fails to parse or is non-finite; the caller drops the
// record and continues, so corrupt upstream data never aborts a parse.
func extractAtom(line []byte, hetatm bool, idx ssIndex) (Atom, bool) {
	x, okX := parseCoord(field(line, atomXLo, atomXHi))
	y, okY := parseCoord(field(line, atomYLo, atomYHi))
	z, okZ := parseCoord(field(line, atomZLo, atomZHi))
	if !okX || !okY || !okZ {
		return Atom{}, false
	}

	name := field(line, atomNameLo, atomNameHi)
	residue := field(line, atomResLo, atomResHi)
	chain := field(line, atomChainCol, atomChainCol+1)
	residueNumber, _ := strconv.Atoi(field(line, atomResNumLo, atomResNumHi))

	element := field(line, atomElementLo, atomElementHi)
	if element == "" {
		element = elementFromName(name)
	}
	element = titleCase(element)

	backbone := backboneNames[name]
	ligand := hetatm || !standardResidues[residue]

	class := Unassigned
	if c, ok := idx[residueKey{chain: chain, number: residueNumber}]; ok {
		class = c
	}

	return Atom{
		Name:               name,
		Element:            element,
		Residue:            residue,
		Chain:              chain,
		ResidueNumber:      residueNumber,
		X:                  x,
		Y:                  y,
		Z:                  z,
		SecondaryStructure: class,
		IsBackbone:         backbone,
		IsLigand:           ligand,
		IsPocket:           !backbone && !ligand,
	}, true
}

func parseCoord(s string) (float32, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return float32(v), true
}

// elementFromName infers the chemical symbol from the leading alphabetic
// characters of the atom name, at most two.
func elementFromName(name string) string {
	var sym []rune
	for _, r := range name {
		if !unicode.IsLetter(r) || len(sym) == 2 {
			break
		}
		sym = append(sym, r)
	}
	return string(sym)
}

// titleCase normalizes a chemical symbol: first letter upper, rest lower,
// so "FE", "fe" and "Fe" all map to one cache key downstream.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	for i := 1; i < len(r); i++ {
		r[i] = unicode.ToLower(r[i])
	}
	return string(r)
}
