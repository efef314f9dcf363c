package token

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadValue(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      interface{}
	}{
		{
			description: "object",
			input:       `{"a":1,"b":[true,null],"c":{"d":"e"},"a":2}`,
			expect: map[string]interface{}{
				"a": int64(2),
				"b": []interface{}{true, nil},
				"c": map[string]interface{}{"d": "e"},
			},
		},
		{
			description: "list",
			input:       `[1.5,"x",[]]`,
			expect:      []interface{}{1.5, "x", []interface{}{}},
		},
		{
			description: "scalar",
			input:       `"only"`,
			expect:      "only",
		},
	}
	for _, testCase := range testCases {
		s := NewScanner([]byte(testCase.input))
		_, err := s.Next()
		require.NoError(t, err, testCase.description)
		actual, err := ReadValue(s)
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
		kind, err := s.Next()
		require.NoError(t, err, testCase.description)
		assert.Equal(t, EOF, kind, testCase.description)
	}
}

func TestReadList_RequiresArray(t *testing.T) {
	s := NewScanner([]byte(`{"a":1}`))
	_, err := s.Next()
	require.NoError(t, err)
	_, err = ReadList(s)
	assert.True(t, errors.Is(err, ErrUnexpectedToken))
	_, err = ReadValue(NewScanner([]byte(`1`)))
	assert.True(t, errors.Is(err, ErrUnexpectedToken), "cursor not advanced")

	var tokenErr *UnexpectedTokenError
	require.True(t, errors.As(Expect(s, EndArray, StartArray, String), &tokenErr))
	assert.Equal(t, []Kind{StartArray, String}, tokenErr.Expected)
	assert.Equal(t, EndArray, tokenErr.Actual)
	assert.Contains(t, tokenErr.Error(), "expected start_array or value_string")
	assert.NoError(t, Expect(s, String, StartArray, String))
}
