package kubetags

import (
	"reflect"
	"regexp"
	"testing"
)

var k3sTags = []string{
	"v1.27.1-k3s1",
	"v1.27.3-k3s1",
	"v1.27.3-k3s2",
	"v1.28.0-k3s1",
	"v1.28.2-k3s1",
	"v1.28.2-k3s1-rc1",
	"v1.28.2-k3s2",
	"v1.29.0-k3s1",
	"v1.29.1-k3s1",
	"v2.0.0",
	"latest",
	"sha256-0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef.sig",
}

func TestSelect_Depth(t *testing.T) {
	t.Parallel()

	cases := []struct {
		depth Depth
		want  []string
	}{
		{DepthPatch, []string{
			"v1.27.3-k3s1", "v1.27.3-k3s2", "v1.28.0-k3s1", "v1.28.2-k3s1",
			"v1.28.2-k3s2", "v1.29.0-k3s1", "v1.29.1-k3s1", "v2.0.0",
		}},
		{DepthMinor, []string{"v1.27.3-k3s2", "v1.28.2-k3s2", "v1.29.1-k3s1", "v2.0.0"}},
		{DepthMajor, []string{"v1.29.1-k3s1", "v2.0.0"}},
		{DepthLatest, []string{"v2.0.0"}},
	}

	for _, tc := range cases {
		got, err := Select(FromSlice(k3sTags), "v1.27.2-k3s1", Options{Depth: tc.depth})
		if err != nil {
			t.Fatalf("Select(depth=%v): %v", tc.depth, err)
		}

		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("Select(depth=%v) = %v; want %v", tc.depth, got, tc.want)
		}
	}
}

func TestSelect_SortDescAndLimit(t *testing.T) {
	t.Parallel()

	got, err := Select(FromSlice(k3sTags), "v1.28.0-k3s1", Options{
		Sort:  SortDesc,
		Limit: 3,
	})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}

	want := []string{"v2.0.0", "v1.29.1-k3s1", "v1.29.0-k3s1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Select desc/limit = %v; want %v", got, want)
	}
}

func TestSelect_SortNoneKeepsSourceOrder(t *testing.T) {
	t.Parallel()

	in := []string{"v1.30.0", "v1.28.0", "v1.29.0"}
	got, err := Select(FromSlice(in), "v1.0", Options{Sort: SortNone})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}

	if !reflect.DeepEqual(got, in) {
		t.Fatalf("Select(SortNone) = %v; want %v", got, in)
	}
}

func TestSelect_IncludeExclude(t *testing.T) {
	t.Parallel()

	got, err := Select(FromSlice(k3sTags), "v1.27.2-k3s1", Options{
		Include: regexp.MustCompile(`^v1\.`),
		Exclude: regexp.MustCompile(`-k3s2$`),
	})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}

	want := []string{
		"v1.27.3-k3s1", "v1.28.0-k3s1", "v1.28.2-k3s1", "v1.29.0-k3s1", "v1.29.1-k3s1",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Select include/exclude = %v; want %v", got, want)
	}
}

func TestSelect_Deduplicate(t *testing.T) {
	t.Parallel()

	in := []string{"v1.29", "1.29.0", "v1.29.0-k3s1", "V1.29.0-K3S1", "v1.28.9"}
	got, err := Select(FromSlice(in), "v1.28.0", Options{Deduplicate: true})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}

	want := []string{"v1.28.9", "v1.29", "v1.29.0-k3s1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Select dedup = %v; want %v", got, want)
	}
}

func TestAggregateLatest_TieKeepsFirst(t *testing.T) {
	t.Parallel()

	in := []candidate{
		{ver: MustParse("v1.29"), idx: 0},
		{ver: MustParse("v1.29.0"), idx: 1},
		{ver: MustParse("v1.28.0"), idx: 2},
	}

	got := aggregateLatest(in)
	if len(got) != 1 || got[0].ver.Original() != "v1.29" {
		t.Fatalf("aggregateLatest = %v", got)
	}

	if aggregateLatest(nil) != nil {
		t.Fatalf("aggregateLatest(nil) should be nil")
	}
}

func TestAggregateMinor_OrderOfFirstAppearance(t *testing.T) {
	t.Parallel()

	in := []candidate{
		{ver: MustParse("v1.29.0"), idx: 0},
		{ver: MustParse("v1.28.3"), idx: 1},
		{ver: MustParse("v1.29.2"), idx: 2},
		{ver: MustParse("v1.28.1"), idx: 3},
	}

	got := aggregateMinor(in)
	var tags []string
	for _, c := range got {
		tags = append(tags, c.ver.Original())
	}

	want := []string{"v1.29.2", "v1.28.3"}
	if !reflect.DeepEqual(tags, want) {
		t.Fatalf("aggregateMinor = %v; want %v", tags, want)
	}
}
