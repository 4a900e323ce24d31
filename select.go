package kubetags

// FindNewer returns the stable tags from src that are strictly newer than
// baseline, sorted ascending.
//
// The baseline is parsed before src is touched; an invalid baseline returns
// an *InvalidVersionError and src is never consumed. src is drained exactly
// once. Unstable and malformed tags are skipped, a source error is returned
// as is. Tags of equal precedence keep their source order. No newer tags
// yields a nil slice and a nil error.
func FindNewer(src TagSource, baseline string) ([]string, error) {
	return Select(src, baseline, Options{})
}

// FindNewerIn is FindNewer over an in-memory tag list.
func FindNewerIn(tags []string, baseline string) ([]string, error) {
	return FindNewer(FromSlice(tags), baseline)
}

// Select is FindNewer with extra filtering, aggregation and ordering.
// Pipeline:
//  1. parse baseline and Max (errors abort before reading src)
//  2. single pass: Include/Exclude -> IsStable -> Parse -> newer than baseline -> Max
//  3. Deduplicate -> Depth -> Sort -> Limit
func Select(src TagSource, baseline string, opt Options) ([]string, error) {
	base, err := Parse(baseline)
	if err != nil {
		return nil, err
	}

	ceil, err := newCeiling(opt.Max, opt.MaxExclusive)
	if err != nil {
		return nil, err
	}

	cs, err := collectNewer(src, base, opt, ceil)
	if err != nil {
		return nil, err
	}

	if len(cs) == 0 {
		return nil, nil
	}

	if opt.Deduplicate {
		cs = deduplicate(cs)
	}

	switch opt.Depth {
	case DepthMinor:
		cs = aggregateMinor(cs)
	case DepthMajor:
		cs = aggregateMajor(cs)
	case DepthLatest:
		cs = aggregateLatest(cs)
	default: // DepthPatch -> keep all
	}

	sortCandidates(cs, opt.Sort)

	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ver.Original())
	}

	return capStrings(out, opt.Limit), nil
}
