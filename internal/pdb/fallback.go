package pdb

// Residue propensity tables for the heuristic fallback classifier. These are
// coarse amino-acid preferences, not a secondary-structure predictor; they
// only run when the input carried no HELIX/SHEET records at all.
var (
	helixFavoring = map[string]bool{
		"ALA": true, "LEU": true, "MET": true, "GLU": true,
		"LYS": true, "ARG": true, "GLN": true,
	}
	sheetFavoring = map[string]bool{
		"VAL": true, "ILE": true, "PHE": true, "TYR": true,
		"TRP": true, "THR": true,
	}
)

// applyFallback assigns an approximate structural class to every atom from
// its residue identity. All atoms of one residue get the same class.
func applyFallback(atoms []Atom) {
	for i := range atoms {
		switch {
		case helixFavoring[atoms[i].Residue]:
			atoms[i].SecondaryStructure = Helix
		case sheetFavoring[atoms[i].Residue]:
			atoms[i].SecondaryStructure = Sheet
		default:
			atoms[i].SecondaryStructure = Coil
		}
	}
}
