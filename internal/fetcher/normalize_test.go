package fetcher_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/unicodetools/ucdsync/internal/fetcher"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"blank line dropped", "a\n\nb\n", "a\nb\n"},
		{"missing trailing newline added", "a\nb", "a\nb\n"},
		{"already normalized", "a\nb\n", "a\nb\n"},
		{"only blank lines", "\n\n\n", "\n"},
		{"empty input", "", "\n"},
		{"crlf input", "a\r\n\r\nb\r\n", "a\nb\n"},
		{"ucd style lines", "0041;LATIN CAPITAL LETTER A;Lu\n\n0042;LATIN CAPITAL LETTER B;Lu\n", "0041;LATIN CAPITAL LETTER A;Lu\n0042;LATIN CAPITAL LETTER B;Lu\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Equal(t, fetcher.Normalize(tc.input), tc.want)
		})
	}
}

func TestNormalizeInvariants(t *testing.T) {
	inputs := []string{
		"a\n\nb\n",
		"a\nb",
		"",
		"\n",
		"# comment\n\n\n0020;SPACE;Zs\n",
		"one",
	}
	for _, input := range inputs {
		got := fetcher.Normalize(input)
		gt.True(t, strings.HasSuffix(got, "\n"))
		gt.True(t, !strings.HasSuffix(got, "\n\n"))
		for _, line := range strings.Split(strings.TrimSuffix(got, "\n"), "\n") {
			if got == "\n" {
				break
			}
			gt.True(t, len(line) > 0)
		}
		// idempotency
		gt.Equal(t, fetcher.Normalize(got), got)
	}
}
