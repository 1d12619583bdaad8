package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molscope/molscope/internal/pdb"
)

func testStructure() *pdb.Structure {
	return &pdb.Structure{
		Atoms: []pdb.Atom{
			{ID: 0, Name: "CA", Element: "C", Residue: "ALA", Chain: "A", ResidueNumber: 1, SecondaryStructure: pdb.Helix},
			{ID: 1, Name: "CB", Element: "C", Residue: "ALA", Chain: "A", ResidueNumber: 1, SecondaryStructure: pdb.Helix},
			{ID: 2, Name: "CA", Element: "C", Residue: "VAL", Chain: "B", ResidueNumber: 2, SecondaryStructure: pdb.Sheet},
			{ID: 3, Name: "FE", Element: "Fe", Residue: "HEM", Chain: "B", ResidueNumber: 90, SecondaryStructure: pdb.Coil, IsLigand: true},
		},
		Bonds: []pdb.Bond{{A: 0, B: 1}},
	}
}

func TestStore_PutAndList(t *testing.T) {
	s, err := Open("")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Put("1abc", testStructure()))

	summaries, err := s.List()
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	sum := summaries[0]
	assert.Equal(t, "1abc", sum.Name)
	assert.Equal(t, 4, sum.AtomCount)
	assert.Equal(t, 1, sum.BondCount)
	assert.Equal(t, "A,B", sum.Chains)
	assert.Equal(t, 2, sum.HelixAtoms)
	assert.Equal(t, 1, sum.SheetAtoms)
	assert.Equal(t, 1, sum.CoilAtoms)
	assert.Equal(t, 1, sum.LigandAtoms)
	assert.Equal(t, 4*14, sum.Mass)
}

func TestStore_PutReplaces(t *testing.T) {
	s, err := Open("")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Put("1abc", testStructure()))
	require.NoError(t, s.Put("1abc", &pdb.Structure{}))

	summaries, err := s.List()
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Zero(t, summaries[0].AtomCount)

	elements, err := s.Elements("1abc")
	require.NoError(t, err)
	assert.Empty(t, elements, "replacing a structure clears its element rows")
}

func TestStore_Elements(t *testing.T) {
	s, err := Open("")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Put("1abc", testStructure()))

	elements, err := s.Elements("1abc")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"C": 3, "Fe": 1}, elements)
}

func TestStore_OnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog", "test.duckdb")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Put("1abc", testStructure()))
	require.NoError(t, s.Close())

	// Reopen and confirm the row survived.
	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	summaries, err := s.List()
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "1abc", summaries[0].Name)
}
