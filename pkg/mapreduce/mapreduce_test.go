package mapreduce

import (
	"cmp"
	"strings"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
)

func TestMapAndReduce(t *testing.T) {
	words := []string{"go", "rust", "go", "zig", "go"}

	var intermediate []map[string]int
	for _, batch := range Chunk(words, 2) {
		intermediate = append(intermediate, Map(batch, strings.ToUpper))
	}
	got := Reduce(intermediate)

	want := map[string]int{"GO": 3, "RUST": 1, "ZIG": 1}
	if diff := gocmp.Diff(want, got); diff != "" {
		t.Errorf("Reduce() mismatch (-want +got):\n%s", diff)
	}
}

func TestMapMany(t *testing.T) {
	casts := [][]string{{"x", "y"}, {"y"}, {"x", "y", "z"}}

	got := MapMany(casts, func(c []string) []string { return c })

	want := map[string]int{"x": 2, "y": 3, "z": 1}
	if diff := gocmp.Diff(want, got); diff != "" {
		t.Errorf("MapMany() mismatch (-want +got):\n%s", diff)
	}
}

func TestChunk(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		n     int
		want  [][]int
	}{
		{"empty", nil, 3, nil},
		{"zero batches", []int{1, 2}, 0, nil},
		{"even", []int{1, 2, 3, 4}, 2, [][]int{{1, 2}, {3, 4}}},
		{"uneven", []int{1, 2, 3, 4, 5}, 2, [][]int{{1, 2, 3}, {4, 5}}},
		{"more batches than items", []int{1, 2}, 5, [][]int{{1}, {2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := gocmp.Diff(tt.want, Chunk(tt.items, tt.n)); diff != "" {
				t.Errorf("Chunk() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTopN(t *testing.T) {
	counts := map[int]int{1990: 4, 1991: 7, 1992: 4, 1993: 1}

	got := TopN(counts, 3, cmp.Compare[int])

	want := []KV[int]{{1991, 7}, {1990, 4}, {1992, 4}}
	if diff := gocmp.Diff(want, got); diff != "" {
		t.Errorf("TopN() mismatch (-want +got):\n%s", diff)
	}
	if all := TopN(counts, -1, cmp.Compare[int]); len(all) != 4 {
		t.Errorf("TopN(-1) returned %d keys, want 4", len(all))
	}
}

func TestMax(t *testing.T) {
	kv, ok := Max(map[string]int{"b": 2, "a": 2, "c": 1}, strings.Compare)
	if !ok {
		t.Fatal("Max() ok = false on non-empty map")
	}
	if kv.Key != "a" || kv.Count != 2 {
		t.Errorf("Max() = %+v, want a:2", kv)
	}

	if _, ok := Max(map[string]int{}, strings.Compare); ok {
		t.Error("Max() ok = true on empty map")
	}
}
