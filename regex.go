package kubetags

import "regexp"

// All patterns expect a lowercased tag.
var (
	// Stable release shape: vX / vX.Y / vX.Y.Z, then the optional distribution
	// segments in fixed order, then optional plain words (no digits).
	stableRe = regexp.MustCompile(`^v?\d+(?:\.\d+){0,2}(?:-k3s\d+)?(?:-rancher\d+)?(?:-[a-z]+)*$`)

	// Pre-release / development marker, matched against a single hyphen-delimited segment.
	// "latest" is a floating alias, never a release.
	unstableRe = regexp.MustCompile(`^(?:(?:alpha|beta|rc|dev|test|ci|debug)\d*|latest)$`)

	// Numeric core X / X.Y / X.Y.Z (leading "v" already stripped).
	coreRe = regexp.MustCompile(`^(\d+)(?:\.(\d+))?(?:\.(\d+))?$`)

	// Versioned suffix segment: label that starts and ends with a letter, then digits.
	suffixRe = regexp.MustCompile(`^([a-z](?:[a-z0-9]*[a-z])?)(\d+)$`)
)
