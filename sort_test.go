package kubetags

import (
	"reflect"
	"testing"
)

func TestSort_AscDesc(t *testing.T) {
	t.Parallel()

	in := []string{"v1.28.0-k3s1", "v1.27.10", "v1.28.0", "v1.27.9-k3s2", "v1.28.0-k3s1-rancher1"}

	gotAsc := Sort(in, SortAsc)
	wantAsc := []string{"v1.27.9-k3s2", "v1.27.10", "v1.28.0", "v1.28.0-k3s1", "v1.28.0-k3s1-rancher1"}
	if !reflect.DeepEqual(gotAsc, wantAsc) {
		t.Fatalf("Sort asc got %v; want %v", gotAsc, wantAsc)
	}

	gotDesc := Sort(in, SortDesc)
	wantDesc := []string{"v1.28.0-k3s1-rancher1", "v1.28.0-k3s1", "v1.28.0", "v1.27.10", "v1.27.9-k3s2"}
	if !reflect.DeepEqual(gotDesc, wantDesc) {
		t.Fatalf("Sort desc got %v; want %v", gotDesc, wantDesc)
	}

	// input untouched
	if in[0] != "v1.28.0-k3s1" {
		t.Fatalf("Sort modified its input: %v", in)
	}
}

func TestSort_UnparseableLast(t *testing.T) {
	t.Parallel()

	in := []string{"zeta", "v2", "latest", "v1"}

	got := Sort(in, SortAsc)
	want := []string{"v1", "v2", "zeta", "latest"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Sort got %v; want %v", got, want)
	}
}

func TestSort_ShorthandTiesKeepInputOrder(t *testing.T) {
	t.Parallel()

	in := []string{"1.2.0", "1", "1.2", "1.0.0"}

	got := Sort(in, SortAsc)
	want := []string{"1", "1.0.0", "1.2.0", "1.2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Sort got %v; want %v", got, want)
	}
}

func TestSortN(t *testing.T) {
	t.Parallel()

	got := SortN([]string{"v3", "v1", "v2"}, SortDesc, 2)
	want := []string{"v3", "v2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SortN got %v; want %v", got, want)
	}

	if got := Sort([]string{"b", "a"}, SortNone); !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Fatalf("SortNone reordered: %v", got)
	}
}
