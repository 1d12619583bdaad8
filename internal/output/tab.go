// Package output provides structure output formatters.
package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/molscope/molscope/internal/pdb"
)

// TabWriter writes atoms in tab-delimited format.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Id",
			"Name",
			"Element",
			"Residue",
			"Chain",
			"Residue_number",
			"X",
			"Y",
			"Z",
			"Secondary_structure",
			"Role",
		},
	}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes a single atom.
func (tw *TabWriter) Write(a *pdb.Atom) error {
	role := "-"
	switch {
	case a.IsBackbone:
		role = "backbone"
	case a.IsLigand:
		role = "ligand"
	case a.IsPocket:
		role = "pocket"
	}

	fields := []string{
		fmt.Sprintf("%d", a.ID),
		a.Name,
		a.Element,
		a.Residue,
		a.Chain,
		fmt.Sprintf("%d", a.ResidueNumber),
		fmt.Sprintf("%.3f", a.X),
		fmt.Sprintf("%.3f", a.Y),
		fmt.Sprintf("%.3f", a.Z),
		string(a.SecondaryStructure),
		role,
	}

	_, err := tw.w.WriteString(strings.Join(fields, "\t") + "\n")
	return err
}

// Flush flushes buffered output.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}

// WriteSummary writes a human-readable one-structure summary.
func WriteSummary(w io.Writer, name string, s *pdb.Structure) error {
	var helix, sheet, coil, ligand int
	for _, a := range s.Atoms {
		switch a.SecondaryStructure {
		case pdb.Helix:
			helix++
		case pdb.Sheet:
			sheet++
		case pdb.Coil:
			coil++
		}
		if a.IsLigand {
			ligand++
		}
	}

	if _, err := fmt.Fprintf(w, "%s: %d atoms, %d bonds (helix %d, sheet %d, coil %d, ligand %d)\n",
		name, len(s.Atoms), len(s.Bonds), helix, sheet, coil, ligand); err != nil {
		return err
	}
	for _, ann := range s.Annotations {
		if _, err := fmt.Fprintf(w, "  %-12s %s\n", ann.Type+":", ann.Value); err != nil {
			return err
		}
	}
	return nil
}
