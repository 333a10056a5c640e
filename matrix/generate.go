package matrix

// Generate computes the Cartesian product across all variable groups: every
// combination assigning exactly one entry per group, before any filtering.
//
// The enumeration order is contractual: lexicographic over
// groups-in-declaration-order x entries-in-declaration-order, with the
// right-most group varying fastest, exactly as nested iteration would
// produce. Downstream renderers may depend on output ordering, so this order
// must be stable and reproducible for identical input.
func Generate(spec *Spec) []Combination {
	if len(spec.Groups) == 0 {
		return nil
	}

	for _, g := range spec.Groups {
		if len(g.Entries) == 0 {
			return nil
		}
	}

	combos := make([]Combination, 0, spec.Size())
	indices := make([]int, len(spec.Groups))

	for {
		chosen := make([]*Entry, len(spec.Groups))
		for i, g := range spec.Groups {
			chosen[i] = g.Entries[indices[i]]
		}

		combos = append(combos, Combination{spec: spec, entries: chosen})

		// Advance the odometer, right-most group first.
		i := len(indices) - 1
		for ; i >= 0; i-- {
			indices[i]++
			if indices[i] < len(spec.Groups[i].Entries) {
				break
			}

			indices[i] = 0
		}

		if i < 0 {
			return combos
		}
	}
}
