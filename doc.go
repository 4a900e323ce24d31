/*
Package kubetags selects stable Kubernetes distribution release tags
(plain "v1.28.3", k3s "v1.28.3-k3s1", RKE2-style "v1.28.3-k3s1-rancher2")
that are newer than a baseline tag.

The package is network-agnostic: it consumes a TagSource, a lazy
iter.Seq2[string, error] of tag names, and never talks to a registry itself.
See the tagsource subpackage for OCI and Docker Hub sources.

Typical flow:

 1. Open a tag source elsewhere (e.g., tagsource.NewOCI("rancher/k3s")).
 2. Call FindNewer with the currently deployed tag as baseline.
 3. Use the resulting list (ascending, oldest first).

Version notes:
  - A single leading "v" is accepted on input.
  - The numeric core has 1 to 3 components; missing ones compare as zero,
    so "1.28" equals "1.28.0".
  - Hyphen segments shaped as letters then digits ("k3s1", "rancher2") are
    compared after the core, in tag order, label first then number.
  - Stability is decided by IsStable: "latest" and any "-alpha", "-beta",
    "-rc", "-dev", "-test", "-ci" or "-debug" segment (optionally numbered)
    are rejected.

Usage example:

	raw := []string{
		"v1.27.2-k3s1", "v1.27.3-k3s1", "v1.27.3-k3s1-rc1",
		"v1.27.1-k3s1", "latest", "v1.28.0-k3s1-rancher2",
	}

	newer, err := kubetags.FindNewerIn(raw, "v1.27.2-k3s1")
	if err != nil {
		// baseline is not a version
	}

	fmt.Println(newer) // [v1.27.3-k3s1 v1.28.0-k3s1-rancher2]

Select adds Include/Exclude regexps, an upper bound, deduplication,
per-minor / per-major aggregation, descending order and a result limit.
*/
package kubetags
