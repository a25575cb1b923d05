package history

import (
	"slices"
	"testing"
)

func TestRankExample(t *testing.T) {
	input := []int{3, 2, 4, 6, 2, 4, 3, 3, 4, 5, 6, 3, 2, 4, 5, 5, 3}
	want := []int{3, 4, 5, 2, 6}

	got := Rank(input)
	if !slices.Equal(got, want) {
		t.Errorf("Rank(%v) = %v, want %v", input, got, want)
	}
}

func TestRank(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "empty",
			input: nil,
			want:  nil,
		},
		{
			name:  "all distinct is pure recency",
			input: []string{"ls", "pwd", "git status"},
			want:  []string{"git status", "pwd", "ls"},
		},
		{
			name:  "frequency beats recency",
			input: []string{"make", "make", "ls"},
			want:  []string{"make", "ls"},
		},
		{
			name:  "equal frequency ordered by last use",
			input: []string{"a", "b", "a", "b", "c", "c"},
			want:  []string{"c", "b", "a"},
		},
		{
			name:  "single entry",
			input: []string{"cargo test", "cargo test", "cargo test"},
			want:  []string{"cargo test"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rank(tt.input)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Rank(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRankProperties(t *testing.T) {
	input := []string{
		"git add .", "ls", "git commit", "ls", "make", "git add .",
		"ls", "vim main.go", "make", "git push", "git add .", "ls",
	}

	freq := map[string]int{}
	last := map[string]int{}
	for i, e := range input {
		freq[e]++
		last[e] = i
	}

	got := Rank(input)

	if len(got) != len(freq) {
		t.Fatalf("Rank returned %d entries, want %d distinct", len(got), len(freq))
	}
	seen := map[string]bool{}
	for _, e := range got {
		if seen[e] {
			t.Errorf("entry %q appears more than once", e)
		}
		seen[e] = true
	}

	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		if freq[prev] < freq[cur] {
			t.Errorf("%q (freq %d) ranked before %q (freq %d)", prev, freq[prev], cur, freq[cur])
		}
		if freq[prev] == freq[cur] && last[prev] < last[cur] {
			t.Errorf("%q (last %d) ranked before more recent %q (last %d)", prev, last[prev], cur, last[cur])
		}
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	input := []string{"b", "a", "b"}
	Rank(input)
	if !slices.Equal(input, []string{"b", "a", "b"}) {
		t.Errorf("Rank mutated its input: %q", input)
	}
}

func TestUnique(t *testing.T) {
	got := Unique([]string{"ls", "pwd", "ls", "cd /tmp", "pwd"})
	want := []string{"ls", "pwd", "cd /tmp"}
	if !slices.Equal(got, want) {
		t.Errorf("Unique() = %q, want %q", got, want)
	}
}
