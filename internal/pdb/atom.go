// Package pdb parses Protein Data Bank coordinate files into an in-memory
// molecular graph: atoms, inferred covalent bonds, and derived annotations.
package pdb

// SecondaryStructure is the structural class assigned to an atom's residue.
type SecondaryStructure string

const (
	Helix      SecondaryStructure = "helix"
	Sheet      SecondaryStructure = "sheet"
	Coil       SecondaryStructure = "coil"
	Unassigned SecondaryStructure = "unassigned"
)

// Atom is a single atom from an ATOM or HETATM record.
type Atom struct {
	// ID is the atom's position in Structure.Atoms: dense, 0-based,
	// assigned in input order.
	ID int `json:"id"`

	Name          string `json:"name"`
	Element       string `json:"element"`
	Residue       string `json:"residue"`
	Chain         string `json:"chain"`
	ResidueNumber int    `json:"residueNumber"`

	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`

	SecondaryStructure SecondaryStructure `json:"secondaryStructure"`

	// IsBackbone marks the polymer backbone atoms (CA, C, N, O).
	IsBackbone bool `json:"isBackbone"`
	// IsLigand marks HETATM atoms and atoms of non-standard residues.
	IsLigand bool `json:"isLigand"`
	// IsPocket marks side-chain polymer atoms, a coarse proxy for
	// pocket-surface candidates.
	IsPocket bool `json:"isPocket"`
}

// Bond is an inferred covalent edge between two atoms, referenced by ID.
// A < B always holds.
type Bond struct {
	A int `json:"a"`
	B int `json:"b"`
}

// Annotation is a descriptive fact attached to a structure.
type Annotation struct {
	Type        string `json:"type"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// Structure is the parsed molecular graph. It is built once per Parse call
// and must be treated as immutable afterwards.
type Structure struct {
	Atoms       []Atom       `json:"atoms"`
	Bonds       []Bond       `json:"bonds"`
	Annotations []Annotation `json:"annotations"`
}

// backboneNames are the atom names forming the repeating connective path of
// a polymer chain.
var backboneNames = map[string]bool{
	"CA": true, "C": true, "N": true, "O": true,
}

// standardResidues are the 20 standard amino acid codes. Anything else in
// the residue-name column is treated as a ligand.
var standardResidues = map[string]bool{
	"ALA": true, "ARG": true, "ASN": true, "ASP": true, "CYS": true,
	"GLU": true, "GLN": true, "GLY": true, "HIS": true, "ILE": true,
	"LEU": true, "LYS": true, "MET": true, "PHE": true, "PRO": true,
	"SER": true, "THR": true, "TRP": true, "TYR": true, "VAL": true,
}
