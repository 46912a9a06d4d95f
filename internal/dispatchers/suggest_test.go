package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"identical strings", "give", "give", 0},
		{"one extra character", "give", "gives", 1},
		{"transposition", "give", "gvie", 2},
		{"substitution", "time", "tame", 1},
		{"completely different", "tp", "history", 6},
		{"empty a", "", "who", 3},
		{"empty b", "who", "", 3},
		{"both empty", "", "", 0},
		{"case insensitive", "HELP", "help", 0},
		{"missing letter", "disconnect", "disconect", 1},
		{"multibyte runes", "héllo", "hello", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, levenshtein(tt.a, tt.b))
			require.Equal(t, tt.want, levenshtein(tt.b, tt.a), "distance is symmetric")
		})
	}
}

func TestFindSimilarCommands(t *testing.T) {
	labels := []string{"give", "gift", "time", "tp", "help", "history", "who", "msg", "tell"}

	tests := []struct {
		name  string
		input string
		max   int
		want  []string
	}{
		{"typo", "gvie", 3, []string{"give", "gift", "time"}},
		{"closest first then alphabetical", "tme", 3, []string{"time", "tp", "give"}},
		{"limited", "tme", 1, []string{"time"}},
		{"exact match is not a suggestion", "who", 3, []string{"msg", "tp"}},
		{"nothing close", "xyzzyplugh", 3, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FindSimilarCommands(tt.input, labels, tt.max))
		})
	}
}

func TestFindSimilarCommands_DeduplicatesLabels(t *testing.T) {
	got := FindSimilarCommands("hlep", []string{"help", "help"}, 3)
	require.Equal(t, []string{"help"}, got)
}
