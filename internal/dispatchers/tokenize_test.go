package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"give stone 5", []string{"give", "stone", "5"}},
		{"  give\tstone   5  ", []string{"give", "stone", "5"}},
		{`msg steve "meet at spawn"`, []string{"msg", "steve", "meet at spawn"}},
		{`msg steve say\ hi`, []string{"msg", "steve", "say hi"}},
		{`grant steve ""`, []string{"grant", "steve", ""}},
		{`say "a"b`, []string{"say", "ab"}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := Tokenize(tt.line)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTokenize_Errors(t *testing.T) {
	_, err := Tokenize(`msg steve "unterminated`)
	require.ErrorContains(t, err, "unterminated quote")

	_, err = Tokenize(`give stone \`)
	require.ErrorContains(t, err, "trailing backslash")
}
