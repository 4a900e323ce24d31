package kubetags

import "sort"

// * dedup

// deduplicate keeps the first candidate of every precedence class.
func deduplicate(in []candidate) []candidate {
	out := in[:0]

	for _, c := range in {
		dup := false
		for _, kept := range out {
			if Compare(c.ver, kept.ver) == 0 {
				dup = true
				break
			}
		}

		if !dup {
			out = append(out, c)
		}
	}

	return out
}

// * aggregation (Depth)

func aggregateMinor(in []candidate) []candidate {
	type key struct{ maj, min int }

	return aggregateBy(in, func(v VersionTag) key {
		return key{v.Major(), v.Minor()}
	})
}

func aggregateMajor(in []candidate) []candidate {
	return aggregateBy(in, func(v VersionTag) int {
		return v.Major()
	})
}

// aggregateBy keeps the newest candidate per key, in order of first key
// appearance. On equal precedence the earlier candidate wins.
func aggregateBy[K comparable](in []candidate, keyOf func(VersionTag) K) []candidate {
	by := make(map[K]candidate, len(in))
	order := make([]K, 0, 64)

	for _, c := range in {
		k := keyOf(c.ver)
		if b, ok := by[k]; ok {
			cmp := Compare(c.ver, b.ver)
			if cmp > 0 || (cmp == 0 && c.idx < b.idx) {
				by[k] = c
			}
		} else {
			by[k] = c
			order = append(order, k)
		}
	}

	out := make([]candidate, 0, len(by))
	for _, k := range order {
		out = append(out, by[k])
	}

	return out
}

func aggregateLatest(in []candidate) []candidate {
	if len(in) == 0 {
		return in
	}

	best := in[0]
	for _, c := range in[1:] {
		cmp := Compare(c.ver, best.ver)
		if cmp > 0 || (cmp == 0 && c.idx < best.idx) {
			best = c
		}
	}

	return []candidate{best}
}

// * sorting

// sortCandidates orders in place. The sort is stable, so candidates of equal
// precedence keep the order they were accepted in.
func sortCandidates(in []candidate, mode SortMode) {
	if mode == SortNone || len(in) < 2 {
		return
	}

	sort.SliceStable(in, func(i, j int) bool {
		c := Compare(in[i].ver, in[j].ver)
		if mode == SortDesc {
			return c > 0
		}

		return c < 0
	})
}
