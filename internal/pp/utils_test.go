package pp_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/favonia/regrobot/internal/pp"
)

func TestJoin(t *testing.T) {
	t.Parallel()
	for name, tc := range map[string]struct {
		input  []string
		output string
	}{
		"none":  {nil, "(none)"},
		"one":   {[]string{"hello"}, "hello"},
		"two":   {[]string{"hello", "hey"}, "hello, hey"},
		"three": {[]string{"hello", "hey", "hi"}, "hello, hey, hi"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.output, pp.Join(tc.input))
		})
	}
}

func TestEnglishJoin(t *testing.T) {
	t.Parallel()
	for name, tc := range map[string]struct {
		input  []string
		output string
	}{
		"none":  {nil, "(none)"},
		"one":   {[]string{"hello"}, "hello"},
		"two":   {[]string{"hello", "hey"}, "hello and hey"},
		"three": {[]string{"hello", "hey", "hi"}, "hello, hey, and hi"},
		"four":  {[]string{"a", "b", "c", "d"}, "a, b, c, and d"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.output, pp.EnglishJoin(tc.input))
		})
	}
}

func TestJoinMap(t *testing.T) {
	t.Parallel()

	require.Equal(t, "(none)", pp.JoinMap(func(s string) string { return s + "." }, nil))
	require.Equal(t, "a., b.", pp.JoinMap(func(s string) string { return s + "." }, []string{"a", "b"}))
}

func TestEnglishJoinMap(t *testing.T) {
	t.Parallel()

	require.Equal(t, "(none)", pp.EnglishJoinMap(strings.ToUpper, nil))
	require.Equal(t, "A", pp.EnglishJoinMap(strings.ToUpper, []string{"a"}))
	require.Equal(t, "A and B", pp.EnglishJoinMap(strings.ToUpper, []string{"a", "b"}))
	require.Equal(t, "A, B, and C", pp.EnglishJoinMap(strings.ToUpper, []string{"a", "b", "c"}))
}
