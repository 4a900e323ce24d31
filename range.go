package kubetags

import "cmp"

// ceiling clips candidates to an optional upper bound.
//
// A shorthand bound (X or X.Y) is a bucket: inclusive keeps the whole bucket
// with every suffix ("v1.28" keeps "v1.28.5-k3s1"), exclusive stops below the
// bucket floor. A full X.Y.Z[-suffix] bound is compared as a version tag.
type ceiling struct {
	max       VersionTag
	set       bool
	exclusive bool
	bucket    int // core components of a shorthand bound, 0 for a full bound
}

// newCeiling parses the bound; an empty bound disables clipping.
func newCeiling(max string, exclusive bool) (ceiling, error) {
	if max == "" {
		return ceiling{}, nil
	}

	v, err := Parse(max)
	if err != nil {
		return ceiling{}, err
	}

	c := ceiling{max: v, set: true, exclusive: exclusive}
	if n := len(v.core); n < 3 && len(v.suffixes) == 0 {
		c.bucket = n
	}

	return c, nil
}

// allows reports whether v is within the bound.
func (c ceiling) allows(v VersionTag) bool {
	if !c.set {
		return true
	}

	var diff int
	switch c.bucket {
	case 1:
		diff = cmp.Compare(v.Major(), c.max.Major())
	case 2:
		diff = cmp.Or(
			cmp.Compare(v.Major(), c.max.Major()),
			cmp.Compare(v.Minor(), c.max.Minor()),
		)
	default:
		diff = Compare(v, c.max)
	}

	return diff < 0 || (diff == 0 && !c.exclusive)
}
