package cli

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  hello world \n"), "Name? ", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name? ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name? ", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name? ", &out)
	require.ErrorIs(t, err, io.EOF)
}

func TestGetNonEmptyText_RepromptsOnBlank(t *testing.T) {
	var out bytes.Buffer
	got, err := GetNonEmptyText(rdr("\n   \nAna\n"), "First Name: ", &out)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got)
	assert.Equal(t, 3, strings.Count(out.String(), "First Name: "))
	assert.Equal(t, 2, strings.Count(out.String(), "cannot be empty"))
}

func TestGetNonEmptyText_EOF(t *testing.T) {
	var out bytes.Buffer
	_, err := GetNonEmptyText(rdr("\n"), "First Name: ", &out)
	require.ErrorIs(t, err, io.EOF)
}

func TestGetOption(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "first", input: "1\n", want: "Male"},
		{name: "last", input: "2\n", want: "Female"},
		{name: "retry after junk and out of range", input: "x\n0\n3\n2\n", want: "Female"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetOption(rdr(tc.input), "Select Gender:", []string{"Male", "Female"}, &out)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			assert.Contains(t, out.String(), "1. Male\n2. Female\n")
		})
	}
}

func TestGetOption_Errors(t *testing.T) {
	var out bytes.Buffer

	_, err := GetOption(rdr("1\n"), "Pick:", nil, &out)
	require.Error(t, err)

	_, err = GetOption(rdr("9\n"), "Pick:", []string{"a"}, &out)
	require.ErrorIs(t, err, io.EOF)
}
