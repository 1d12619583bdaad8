package pdb

import "strconv"

// notAvailable is the designated "nothing to show" value. When a parse
// yields no atoms, every annotation carries it and the caller presents the
// empty-structure case to the user.
const notAvailable = "N/A"

// averageAtomMass is a crude per-atom mass estimate in Dalton, good enough
// for the summary panel this feeds.
const averageAtomMass = 14

// synthesizeAnnotations derives the descriptive facts attached to a parsed
// structure. The experimental metadata fields are placeholders; the
// coordinate format alone does not carry them.
func synthesizeAnnotations(atomCount int) []Annotation {
	atoms := notAvailable
	mass := notAvailable
	resolution := notAvailable
	method := notAvailable
	organism := notAvailable
	function := notAvailable

	if atomCount > 0 {
		atoms = strconv.Itoa(atomCount)
		mass = strconv.Itoa(atomCount*averageAtomMass) + " Da"
		resolution = "Unspecified"
		method = "Unspecified"
		organism = "Unspecified"
		function = "Unspecified"
	}

	return []Annotation{
		{Type: "atoms", Value: atoms, Description: "Number of atoms"},
		{Type: "mass", Value: mass, Description: "Approximate molecular mass"},
		{Type: "resolution", Value: resolution, Description: "Experimental resolution"},
		{Type: "method", Value: method, Description: "Experimental method"},
		{Type: "organism", Value: organism, Description: "Source organism"},
		{Type: "function", Value: function, Description: "Known function"},
	}
}
