package token

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// positionAt advances s to the value of the first top level field.
func positionAt(t *testing.T, s *Scanner) {
	t.Helper()
	for i := 0; i < 3; i++ {
		_, err := s.Next()
		require.NoError(t, err)
	}
}

func TestCopy(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      string
	}{
		{
			description: "formatting is normalized",
			input:       `{"s": { "b" : [1, 2.5, "x\"y", true, null], "c": {} } }`,
			expect:      `{"b":[1,2.5,"x\"y",true,null],"c":{}}`,
		},
		{
			description: "escapes are re-encoded",
			input:       `{"s":{"t":"a\tb\u0001é"}}`,
			expect:      `{"t":"a\tb\u0001é"}`,
		},
		{
			description: "array container",
			input:       `{"s":[[],[{"a":-1e2}]]}`,
			expect:      `[[],[{"a":-1e2}]]`,
		},
	}
	for _, testCase := range testCases {
		s := NewScanner([]byte(testCase.input))
		positionAt(t, s)
		buf := &bytes.Buffer{}
		require.NoError(t, Copy(buf, s), testCase.description)
		assert.Equal(t, testCase.expect, buf.String(), testCase.description)
		assert.Equal(t, "s", s.Name(), testCase.description)
		kind, err := s.Next()
		require.NoError(t, err, testCase.description)
		assert.Equal(t, EndObject, kind, testCase.description)
	}
}

func TestCopy_ReparsesEqual(t *testing.T) {
	input := `{"s":{ "a" : { "b" : [1, "two", false, null] }, "c": 1.5 }}`
	s := NewScanner([]byte(input))
	positionAt(t, s)
	buf := &bytes.Buffer{}
	require.NoError(t, Copy(buf, s))

	original := NewScanner([]byte(input))
	positionAt(t, original)
	expect, err := ReadMap(original)
	require.NoError(t, err)

	copied := NewScanner(buf.Bytes())
	_, err = copied.Next()
	require.NoError(t, err)
	actual, err := ReadMap(copied)
	require.NoError(t, err)
	assert.Equal(t, expect, actual)
}

func TestCopy_Errors(t *testing.T) {
	s := NewScanner([]byte(`{"s":1}`))
	positionAt(t, s)
	buf := &bytes.Buffer{}
	err := Copy(buf, s)
	assert.True(t, errors.Is(err, ErrUnexpectedToken))

	s = NewScanner([]byte(`{"s":{"a":1,"b":tru}}`))
	positionAt(t, s)
	err = Copy(buf, s)
	assert.True(t, errors.Is(err, ErrSyntax))
	assert.Equal(t, 0, buf.Len())

	s = NewScanner([]byte(`{"s":{"a":1-2}}`))
	positionAt(t, s)
	err = Copy(buf, s)
	assert.True(t, errors.Is(err, ErrSyntax))
	assert.Equal(t, 0, buf.Len())
}

func TestCopy_RejectsInvalidJSON(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
	}{
		{description: "leading zero", input: `{"s":{"a":01}}`},
		{description: "empty fraction", input: `{"s":{"a":1.}}`},
		{description: "leading zero with empty fraction", input: `{"s":{"a":-01.e5}}`},
		{description: "nested empty exponent", input: `{"s":[{"a":[2E]}]}`},
		{description: "raw tab in string", input: "{\"s\":{\"a\":\"x\ty\"}}"},
		{description: "raw control in name", input: "{\"s\":{\"a\x01\":1}}"},
		{description: "invalid escape", input: `{"s":{"a":"\x41"}}`},
	}
	for _, testCase := range testCases {
		s := NewScanner([]byte(testCase.input))
		positionAt(t, s)
		buf := &bytes.Buffer{}
		err := Copy(buf, s)
		assert.True(t, errors.Is(err, ErrSyntax), "%s: %v", testCase.description, err)
		assert.Equal(t, 0, buf.Len(), testCase.description)
	}
}

func TestScanner_SkipRejectsInvalidJSON(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
	}{
		{description: "leading zero", input: `{"s":{"a":01}}`},
		{description: "empty fraction", input: `{"s":[1.]}`},
		{description: "number followed by operator", input: `{"s":[1-2]}`},
		{description: "raw tab in string", input: "{\"s\":[\"x\ty\"]}"},
		{description: "invalid escape", input: `{"s":["\q"]}`},
		{description: "truncated unicode escape", input: `{"s":{"\u00":1}}`},
	}
	for _, testCase := range testCases {
		s := NewScanner([]byte(testCase.input))
		positionAt(t, s)
		err := s.Skip()
		assert.True(t, errors.Is(err, ErrSyntax), "%s: %v", testCase.description, err)
	}
}

func TestScanner_EscapeErrorOffset(t *testing.T) {
	s := NewScanner([]byte(`["ab\q"]`))
	for i := 0; i < 2; i++ {
		_, err := s.Next()
		require.NoError(t, err)
	}
	_, err := s.Text()
	var syntaxErr *SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, 4, syntaxErr.Offset)
}
