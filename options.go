package kubetags

import "regexp"

// Options configures Select. The zero value behaves like FindNewer:
// every newer stable tag, ascending.
type Options struct {
	// Include keeps only raw tags matching the expression (applied before parsing).
	Include *regexp.Regexp

	// Exclude drops raw tags matching the expression (applied before parsing).
	Exclude *regexp.Regexp

	// Max optionally caps candidates from above. A shorthand bound is a
	// bucket: "v1.28" keeps every 1.28.x tag whatever its suffixes, and with
	// MaxExclusive keeps only what is below 1.28. A full bound such as
	// "v1.28.2-k3s1" uses the Compare ordering. Empty means no ceiling.
	Max string

	// MaxExclusive drops candidates equal to Max (or inside its bucket).
	MaxExclusive bool

	// Deduplicate collapses tags of equal precedence ("1.28" vs "v1.28.0"),
	// keeping the first one seen.
	Deduplicate bool

	// Depth controls aggregation (patch/minor/major/latest).
	Depth Depth

	// Sort defines output ordering. Zero value is ascending.
	Sort SortMode

	// Limit caps the number of returned tags after sorting; <=0 is unlimited.
	Limit int
}

// Depth controls aggregation granularity of the selected tags.
type Depth int

const (
	// DepthPatch keeps every newer tag (no aggregation).
	DepthPatch Depth = iota
	// DepthMinor keeps the newest tag per (major, minor).
	DepthMinor
	// DepthMajor keeps the newest tag per major.
	DepthMajor
	// DepthLatest keeps a single newest tag.
	DepthLatest
)

// String returns a stable textual representation for Depth.
func (d Depth) String() string {
	switch d {
	case DepthLatest:
		return "latest"
	case DepthMajor:
		return "major"
	case DepthMinor:
		return "minor"
	default:
		return "patch"
	}
}

// ParseDepth maps free-form tokens to Depth.
// Supported aliases (case-insensitive):
//
//	latest:  "latest","l","head","max","0"
//	major:   "major","maj","x","1"
//	minor:   "minor","min","xy","2"
//	patch:   "patch","pth","xyz","3","none","all"
func ParseDepth(s string) Depth {
	switch toTok(s) {
	case "latest", "l", "head", "max", "0":
		return DepthLatest

	case "major", "maj", "x", "1":
		return DepthMajor

	case "minor", "min", "xy", "2":
		return DepthMinor

	default:
		return DepthPatch
	}
}

// SortMode controls the final output ordering.
type SortMode uint8

const (
	// SortAsc sorts oldest first.
	SortAsc SortMode = iota
	// SortDesc sorts newest first.
	SortDesc
	// SortNone preserves the order tags came from the source.
	SortNone
)

// String returns a stable textual representation for SortMode.
func (m SortMode) String() string {
	switch m {
	case SortDesc:
		return "descending"
	case SortNone:
		return "none"
	default:
		return "ascending"
	}
}

// ParseSort maps strings to SortMode.
// Supported aliases:
//
//	asc:  "asc","ascending","inc","increase","up" (default)
//	desc: "desc","descending","dec","decrease","down"
//	none: "none","asis","source"
func ParseSort(s string) SortMode {
	switch toTok(s) {
	case "desc", "descending", "dec", "decrease", "down":
		return SortDesc

	case "none", "asis", "source":
		return SortNone

	default:
		return SortAsc
	}
}
