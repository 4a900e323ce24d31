package kubetags

import (
	"math/rand"
	"regexp"
	"strconv"
	"testing"
)

// Global sink to avoid compiler eliminating results.
var benchResult []string

// randomCore returns X / X.Y / X.Y.Z with an optional leading "v".
func randomCore(r *rand.Rand) string {
	s := strconv.Itoa(r.Intn(3))
	for i := r.Intn(3); i > 0; i-- {
		s += "." + strconv.Itoa(r.Intn(40))
	}

	if r.Intn(100) < 70 {
		s = "v" + s
	}

	return s
}

// makeTags generates a mixed dataset shaped like a k3s/rke2 repository:
// releases with distribution suffixes, pre-releases, signatures and junk.
func makeTags(n int) []string {
	r := rand.New(rand.NewSource(1)) // deterministic
	out := make([]string, n)

	for i := 0; i < n; i++ {
		switch x := r.Intn(100); {
		case x < 60: // releases with optional k3s / rancher suffixes
			s := randomCore(r)

			if r.Intn(100) < 70 {
				s += "-k3s" + strconv.Itoa(1+r.Intn(3))
			}

			if r.Intn(100) < 20 {
				s += "-rancher" + strconv.Itoa(1+r.Intn(3))
			}

			// ~15% pre-releases
			if r.Intn(100) < 15 {
				kind := []string{"alpha", "beta", "rc", "dev", "RC"}[r.Intn(5)]
				s += "-" + kind + strconv.Itoa(r.Intn(4))
			}

			// ~5% architecture-specific variants
			if r.Intn(100) < 5 {
				s += []string{"-amd64", "-arm64", "-s390x"}[r.Intn(3)]
			}
			out[i] = s

		case x < 75: // signatures and attestations
			const hexdigits = "0123456789abcdef"
			b := make([]byte, 64)
			for j := range b {
				b[j] = hexdigits[r.Intn(len(hexdigits))]
			}

			out[i] = "sha256-" + string(b) + []string{".sig", ".att"}[r.Intn(2)]

		default: // junk
			junks := []string{
				"latest", "stable", "dev", "edge", "nightly", "Latest",
				"v1.2.3foo", "1.2.3.4", "v1.27.3-k3s1-debug", "master-head",
			}

			out[i] = junks[r.Intn(len(junks))]
		}
	}

	return out
}

func BenchmarkIsStable(b *testing.B) {
	b.ReportAllocs()
	tags := makeTags(10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, t := range tags {
			_ = IsStable(t)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	b.ReportAllocs()
	tags := makeTags(10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, t := range tags {
			_, _ = Parse(t)
		}
	}
}

func BenchmarkFindNewer(b *testing.B) {
	b.ReportAllocs()
	tags := makeTags(50000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchResult, _ = FindNewerIn(tags, "v1.20.0-k3s1")
	}
}

func BenchmarkSelect_DepthMinor_Desc(b *testing.B) {
	b.ReportAllocs()
	tags := makeTags(50000)

	opt := Options{
		Exclude:     regexp.MustCompile(`-(?:amd64|arm64|s390x)$`),
		Deduplicate: true,
		Depth:       DepthMinor,
		Sort:        SortDesc,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchResult, _ = Select(FromSlice(tags), "v1.0", opt)
	}
}

func BenchmarkSort_Desc(b *testing.B) {
	b.ReportAllocs()
	r := rand.New(rand.NewSource(2))
	raw := make([]string, 0, 20000)

	for len(raw) < cap(raw) {
		raw = append(raw, randomCore(r)+"-k3s"+strconv.Itoa(1+r.Intn(3)))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchResult = Sort(raw, SortDesc)
	}
}
