package kubetags

import "iter"

// TagSource is a lazy, single-use sequence of tag names. A failing source
// yields ("", err) and stops; the selector returns that error unchanged.
type TagSource = iter.Seq2[string, error]

// FromSlice adapts an in-memory tag list to a TagSource.
func FromSlice(tags []string) TagSource {
	return func(yield func(string, error) bool) {
		for _, t := range tags {
			if !yield(t, nil) {
				return
			}
		}
	}
}

// candidate is a tag accepted during a selection run.
type candidate struct {
	ver VersionTag // parsed tag, Original() is the raw input
	idx int        // position among accepted tags
}

// collectNewer drains src once and keeps every stable, parseable tag strictly
// newer than base and within the ceiling. Unstable or malformed tags are
// dropped silently: registries hold arbitrary non-version tags.
func collectNewer(src TagSource, base VersionTag, opt Options, ceil ceiling) ([]candidate, error) {
	var out []candidate
	for tag, err := range src {
		if err != nil {
			return nil, err
		}

		if !prefilterTag(tag, opt) || !IsStable(tag) {
			continue
		}

		v, perr := Parse(tag)
		if perr != nil {
			continue
		}

		if Compare(v, base) <= 0 || !ceil.allows(v) {
			continue
		}

		out = append(out, candidate{ver: v, idx: len(out)})
	}

	return out, nil
}

// prefilterTag: cheap user regex checks before classification and parsing.
func prefilterTag(t string, opt Options) bool {
	if opt.Include != nil && !opt.Include.MatchString(t) {
		return false
	}

	if opt.Exclude != nil && opt.Exclude.MatchString(t) {
		return false
	}

	return true
}
