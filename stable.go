package kubetags

import "strings"

// IsStable reports whether tag names a stable Kubernetes distribution release,
// e.g. "v1.27.3", "v1.27.3-k3s1" or "v1.28.0-k3s1-rancher2".
//
// Matching is case-insensitive. Tags equal to "latest", tags with a "-latest"
// segment and tags carrying a pre-release or development marker segment
// ("-rc1", "-alpha", "-dev", ...) are rejected. Markers only count as whole hyphen-delimited segments, so
// "v1.2.3-architecture" and "v1.2.3-rctest" are not treated as pre-releases.
func IsStable(tag string) bool {
	t := strings.ToLower(tag)
	if t == "latest" {
		return false
	}

	if hasUnstableMarker(t) {
		return false
	}

	return stableRe.MatchString(t)
}

// hasUnstableMarker checks every segment after the first hyphen.
func hasUnstableMarker(t string) bool {
	_, rest, found := strings.Cut(t, "-")
	for found {
		var seg string
		seg, rest, found = strings.Cut(rest, "-")
		if unstableRe.MatchString(seg) {
			return true
		}
	}

	return false
}
