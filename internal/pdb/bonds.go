package pdb

// The source format carries no connectivity, so bonds are inferred from
// geometry: two atoms bond when their distance falls between a floor that
// rejects coincident records and 1.2x the sum of their covalent radii.

// Covalent radii in Angstrom for the elements that dominate protein
// structures. Everything else falls back to defaultRadius.
var covalentRadii = map[string]float64{
	"H": 0.31,
	"C": 0.76,
	"N": 0.71,
	"O": 0.66,
	"S": 1.05,
	"P": 1.07,
}

const defaultRadius = 0.85

// minBondDistance is below any realistic bond length; a pair closer than
// this is a duplicate record (e.g. alternate locations), not a bond.
const minBondDistance = 0.4

func covalentRadius(element string) float64 {
	if r, ok := covalentRadii[element]; ok {
		return r
	}
	return defaultRadius
}

// inferBonds runs the O(n^2) candidate scan over all unordered atom pairs.
// The degree cap bounds output size and approximates valence limits; it
// prunes most of the quadratic work on typical inputs.
func inferBonds(atoms []Atom, tolerance float64, maxDegree int) []Bond {
	var bonds []Bond
	degree := make([]int, len(atoms))
	minSq := minBondDistance * minBondDistance

	for i := range atoms {
		if degree[i] >= maxDegree {
			continue
		}
		ri := covalentRadius(atoms[i].Element)
		for j := i + 1; j < len(atoms); j++ {
			if degree[i] >= maxDegree {
				break
			}
			if degree[j] >= maxDegree {
				continue
			}

			dx := float64(atoms[i].X - atoms[j].X)
			dy := float64(atoms[i].Y - atoms[j].Y)
			dz := float64(atoms[i].Z - atoms[j].Z)
			distSq := dx*dx + dy*dy + dz*dz
			if distSq < minSq {
				continue
			}

			cutoff := (ri + covalentRadius(atoms[j].Element)) * tolerance
			if distSq <= cutoff*cutoff {
				bonds = append(bonds, Bond{A: i, B: j})
				degree[i]++
				degree[j]++
			}
		}
	}
	return bonds
}
