package kubetags

import "sort"

// Sort orders tags by version precedence (see Compare). Tags that do not
// parse are kept after the parseable ones in their input order. Ties keep
// input order. The input slice is not modified.
func Sort(in []string, mode SortMode) []string {
	if mode == SortNone || len(in) < 2 {
		return in
	}

	type item struct {
		v  VersionTag
		ok bool
	}

	arr := make([]item, len(in))
	for i, t := range in {
		v, err := Parse(t)
		arr[i] = item{v: v, ok: err == nil}
	}

	idx := make([]int, len(in))
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(i, j int) bool {
		a, b := arr[idx[i]], arr[idx[j]]
		if a.ok != b.ok {
			return a.ok
		}

		if !a.ok {
			return false
		}

		c := Compare(a.v, b.v)
		if mode == SortDesc {
			return c > 0
		}

		return c < 0
	})

	out := make([]string, len(in))
	for i, k := range idx {
		out[i] = in[k]
	}

	return out
}

// SortN sorts and then returns at most N items.
func SortN(in []string, mode SortMode, n int) []string {
	return capStrings(Sort(in, mode), n)
}
