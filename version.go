package kubetags

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/woozymasta/semver"
)

// Suffix is a distribution-specific version segment such as "k3s1" or "rancher2".
type Suffix struct {
	Label  string
	Number int
}

// String renders the suffix back into its tag form.
func (s Suffix) String() string {
	return s.Label + strconv.Itoa(s.Number)
}

func compareSuffix(a, b Suffix) int {
	if c := strings.Compare(a.Label, b.Label); c != 0 {
		return c
	}

	return cmp.Compare(a.Number, b.Number)
}

// VersionTag is a parsed, totally ordered version tag.
// The zero value is not a valid version; use Parse.
type VersionTag struct {
	original string
	core     []int
	suffixes []Suffix
	sem      semver.Semver // normalized core, used for precedence
}

// Parse parses a tag like "v1.27.3-k3s1-rancher2".
//
// The part before the first hyphen, with one optional leading "v", must be
// 1 to 3 dot-separated non-negative integers; otherwise an *InvalidVersionError
// is returned. Every following hyphen-delimited segment shaped as letters then
// digits ("k3s1", "rancher2") becomes a Suffix in order of appearance; any other
// segment is ignored.
func Parse(tag string) (VersionTag, error) {
	base, rest, _ := strings.Cut(tag, "-")

	core, reason := splitCore(trimV(base))
	if reason != "" {
		return VersionTag{}, &InvalidVersionError{Tag: tag, Reason: reason}
	}

	sem, ok := parseCore(normalizeCore(core))
	if !ok {
		return VersionTag{}, &InvalidVersionError{Tag: tag, Reason: "not a valid version"}
	}

	return VersionTag{
		original: tag,
		core:     core,
		suffixes: parseSuffixes(rest),
		sem:      sem,
	}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(tag string) VersionTag {
	v, err := Parse(tag)
	if err != nil {
		panic(err)
	}

	return v
}

func parseSuffixes(rest string) []Suffix {
	if rest == "" {
		return nil
	}

	var out []Suffix
	for _, seg := range strings.Split(rest, "-") {
		m := suffixRe.FindStringSubmatch(strings.ToLower(seg))
		if m == nil {
			continue
		}

		n, err := strconv.Atoi(m[2])
		if err != nil {
			continue // number overflows int, not a usable suffix
		}
		out = append(out, Suffix{Label: m[1], Number: n})
	}

	return out
}

// Original returns the tag exactly as it was parsed.
func (v VersionTag) Original() string { return v.original }

// String implements fmt.Stringer.
func (v VersionTag) String() string { return v.original }

// Core returns the numeric components as written (1 to 3 of them).
func (v VersionTag) Core() []int { return slices.Clone(v.core) }

// Suffixes returns the parsed suffix segments in tag order.
func (v VersionTag) Suffixes() []Suffix { return slices.Clone(v.suffixes) }

// Major returns the first core component.
func (v VersionTag) Major() int { return v.sem.Major }

// Minor returns the second core component, 0 when absent.
func (v VersionTag) Minor() int { return v.sem.Minor }

// Patch returns the third core component, 0 when absent.
func (v VersionTag) Patch() int { return v.sem.Patch }

// Compare returns -1, 0 or +1 depending on whether v sorts before, equal to,
// or after w. See the package level Compare.
func (v VersionTag) Compare(w VersionTag) int { return Compare(v, w) }

// Less reports whether v sorts before w.
func (v VersionTag) Less(w VersionTag) bool { return Compare(v, w) < 0 }

// Equal reports whether v and w have the same precedence.
// The original tag string is not compared.
func (v VersionTag) Equal(w VersionTag) bool { return Compare(v, w) == 0 }

// Compare orders two version tags.
//
// Cores are compared numerically component by component, a missing trailing
// component counting as zero ("1.2" equals "1.2.0"). Equal cores fall back to
// the suffix sequences, compared pairwise by label then number; a sequence
// that is a prefix of the other sorts first.
func Compare(a, b VersionTag) int {
	if c := a.sem.Compare(b.sem); c != 0 {
		return cmp.Compare(c, 0)
	}

	return slices.CompareFunc(a.suffixes, b.suffixes, compareSuffix)
}
