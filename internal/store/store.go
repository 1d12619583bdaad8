// Package store persists summaries of parsed structures in a DuckDB
// catalog so repeated sessions can list what was already inspected without
// re-parsing.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/molscope/molscope/internal/pdb"
)

// Store manages a DuckDB connection for the structure catalog.
type Store struct {
	db   *sql.DB
	path string
}

// Summary is one catalog row.
type Summary struct {
	Name        string
	AtomCount   int
	BondCount   int
	Chains      string
	HelixAtoms  int
	SheetAtoms  int
	CoilAtoms   int
	LigandAtoms int
	Mass        int
	ParsedAt    time.Time
}

// Open opens or creates a catalog at the given path. Use an empty string
// for an in-memory catalog.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create catalog directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS structures (
		name VARCHAR PRIMARY KEY,
		atom_count INTEGER,
		bond_count INTEGER,
		chains VARCHAR,
		helix_atoms INTEGER,
		sheet_atoms INTEGER,
		coil_atoms INTEGER,
		ligand_atoms INTEGER,
		approx_mass INTEGER,
		parsed_at TIMESTAMP
	)`); err != nil {
		return err
	}

	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS elements (
		structure VARCHAR,
		element VARCHAR,
		atom_count INTEGER,
		PRIMARY KEY (structure, element)
	)`)
	return err
}

// Put inserts or replaces the catalog entry for a parsed structure.
func (s *Store) Put(name string, st *pdb.Structure) error {
	var helix, sheet, coil, ligand int
	chains := map[string]bool{}
	elements := map[string]int{}
	for _, a := range st.Atoms {
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
		if a.Chain != "" {
			chains[a.Chain] = true
		}
		elements[a.Element]++
	}

	chainList := make([]string, 0, len(chains))
	for c := range chains {
		chainList = append(chainList, c)
	}
	sort.Strings(chainList)

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin catalog write: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT OR REPLACE INTO structures
		(name, atom_count, bond_count, chains, helix_atoms, sheet_atoms,
		 coil_atoms, ligand_atoms, approx_mass, parsed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		name, len(st.Atoms), len(st.Bonds), strings.Join(chainList, ","),
		helix, sheet, coil, ligand, len(st.Atoms)*14, time.Now())
	if err != nil {
		return fmt.Errorf("write structure row: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM elements WHERE structure = ?`, name); err != nil {
		return fmt.Errorf("clear element rows: %w", err)
	}
	for element, count := range elements {
		if _, err := tx.Exec(`INSERT INTO elements (structure, element, atom_count)
			VALUES (?, ?, ?)`, name, element, count); err != nil {
			return fmt.Errorf("write element row: %w", err)
		}
	}

	return tx.Commit()
}

// List returns all catalog entries, most recent first.
func (s *Store) List() ([]Summary, error) {
	rows, err := s.db.Query(`SELECT name, atom_count, bond_count, chains,
		helix_atoms, sheet_atoms, coil_atoms, ligand_atoms, approx_mass, parsed_at
		FROM structures ORDER BY parsed_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		if err := rows.Scan(&sum.Name, &sum.AtomCount, &sum.BondCount,
			&sum.Chains, &sum.HelixAtoms, &sum.SheetAtoms, &sum.CoilAtoms,
			&sum.LigandAtoms, &sum.Mass, &sum.ParsedAt); err != nil {
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

// Elements returns the per-element atom counts for one structure.
func (s *Store) Elements(name string) (map[string]int, error) {
	rows, err := s.db.Query(`SELECT element, atom_count FROM elements
		WHERE structure = ?`, name)
	if err != nil {
		return nil, fmt.Errorf("query elements: %w", err)
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var element string
		var count int
		if err := rows.Scan(&element, &count); err != nil {
			return nil, fmt.Errorf("scan element row: %w", err)
		}
		out[element] = count
	}
	return out, rows.Err()
}
