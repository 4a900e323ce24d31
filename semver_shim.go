package kubetags

import sv "github.com/woozymasta/semver"

// parseCore parses a normalized X.Y.Z core.
func parseCore(normalized string) (sv.Semver, bool) {
	v, ok := sv.Parse(normalized)
	if !ok || !v.IsValid() {
		return sv.Semver{}, false
	}

	return v, true
}
