package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molscope/molscope/internal/pdb"
)

func TestTabWriter(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTabWriter(&buf)

	require.NoError(t, tw.WriteHeader())
	require.NoError(t, tw.Write(&pdb.Atom{
		ID: 0, Name: "CA", Element: "C", Residue: "ALA", Chain: "A",
		ResidueNumber: 1, X: 1.5, Y: -2.25, Z: 0,
		SecondaryStructure: pdb.Helix, IsBackbone: true,
	}))
	require.NoError(t, tw.Flush())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "#Id\tName\tElement"))
	assert.Equal(t, "0\tCA\tC\tALA\tA\t1\t1.500\t-2.250\t0.000\thelix\tbackbone", lines[1])
}

func TestTabWriter_Roles(t *testing.T) {
	tests := []struct {
		atom pdb.Atom
		role string
	}{
		{pdb.Atom{IsBackbone: true}, "backbone"},
		{pdb.Atom{IsLigand: true}, "ligand"},
		{pdb.Atom{IsPocket: true}, "pocket"},
		{pdb.Atom{}, "-"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		tw := NewTabWriter(&buf)
		require.NoError(t, tw.Write(&tt.atom))
		require.NoError(t, tw.Flush())
		fields := strings.Split(strings.TrimRight(buf.String(), "\n"), "\t")
		assert.Equal(t, tt.role, fields[len(fields)-1])
	}
}

func TestWriteSummary(t *testing.T) {
	s := &pdb.Structure{
		Atoms: []pdb.Atom{
			{SecondaryStructure: pdb.Helix},
			{SecondaryStructure: pdb.Sheet, IsLigand: true},
			{SecondaryStructure: pdb.Coil},
		},
		Bonds: []pdb.Bond{{A: 0, B: 1}},
		Annotations: []pdb.Annotation{
			{Type: "atoms", Value: "3", Description: "Number of atoms"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, "1abc", s))

	out := buf.String()
	assert.Contains(t, out, "1abc: 3 atoms, 1 bonds")
	assert.Contains(t, out, "helix 1, sheet 1, coil 1, ligand 1")
	assert.Contains(t, out, "atoms:")
}
