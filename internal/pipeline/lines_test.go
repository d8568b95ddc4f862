package pipeline

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{name: "empty", src: "", want: nil},
		{name: "single line without newline", src: "a", want: []string{"a"}},
		{name: "single line with newline", src: "a\n", want: []string{"a"}},
		{name: "lone newline", src: "\n", want: []string{""}},
		{name: "blank lines kept", src: "a\n\n\nb", want: []string{"a", "", "", "b"}},
		{name: "trailing blank line", src: "a\n\n", want: []string{"a", ""}},
		{name: "whitespace preserved", src: "  x\t\n\t\n", want: []string{"  x\t", "\t"}},
		{name: "fence block", src: "```go\nfmt.Println()\n```\n", want: []string{"```go", "fmt.Println()", "```"}},
		{name: "multibyte", src: "# Clé\nété", want: []string{"# Clé", "été"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := SplitLines(tt.src)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLines(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestSplitLines_JoinRoundTrip(t *testing.T) {
	t.Parallel()

	src := "# H\n\nparagraph\n```\n  code\n```"
	if got := strings.Join(SplitLines(src), "\n"); got != src {
		t.Errorf("joined lines = %q, want %q", got, src)
	}
}
