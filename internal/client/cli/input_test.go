package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("hello world\n"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("lastline"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetMultiline_DoubleEnter(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("a\nb\n\n\n"))
	var out bytes.Buffer
	got, err := GetMultiline(in, "Enter text", &out)
	if err != nil {
		t.Fatal(err)
	}
	want := "a\nb"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	_, err := GetPassword(&out)
	if err == nil {
		t.Fatal("expected error")
	}
}

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetChoice(t *testing.T) {
	options := []string{"1-10", "11-50", "51-200"}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "selection by number", input: "2\n", expected: "11-50"},
		{name: "selection by text", input: "51-200\n", expected: "51-200"},
		{name: "empty input means skipped", input: "\n", expected: ""},
		{name: "out-of-range number passed through", input: "9\n", expected: "9"},
		{name: "free text passed through", input: "back\n", expected: "back"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetChoice(rdr(tc.input), "Company size", options, &out)
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)
		})
	}
}

func TestGetChoice_PrintsOptions(t *testing.T) {
	var out bytes.Buffer
	_, err := GetChoice(rdr("1\n"), "Company size", []string{"1-10", "11-50"}, &out)
	require.NoError(t, err)
	require.Contains(t, out.String(), "1) 1-10")
	require.Contains(t, out.String(), "2) 11-50")
}
