package getresult

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/getresult/token"
)

func TestResult_FieldNamespaces(t *testing.T) {
	result, err := Unmarshal([]byte(`{"found":true,"foo":"meta","_routing":"r","fields":{"foo":["doc"]}}`))
	require.NoError(t, err)

	assert.Equal(t, "doc", result.Field("foo").Value())
	assert.Equal(t, "r", result.Field("_routing").Value())
	assert.Nil(t, result.Field("missing"))
	assert.Equal(t, "meta", result.MetadataFields()["foo"].Value())
	assert.Equal(t, "doc", result.DocumentFields()["foo"].Value())

	merged := result.Fields()
	assert.Len(t, merged, 2)
	assert.Equal(t, "doc", merged["foo"].Value())
}

func TestResult_Immutable(t *testing.T) {
	result, err := Unmarshal([]byte(`{"_id":"1","_source":{"a":1},"fields":{"f":[1]}}`))
	require.NoError(t, err)

	fields := result.DocumentFields()
	delete(fields, "f")
	fields["x"] = NewField("x", 1)
	assert.Len(t, result.DocumentFields(), 1)
	assert.NotNil(t, result.Field("f"))

	values := result.Field("f").Values()
	values[0] = "changed"
	assert.Equal(t, int64(1), result.Field("f").Value())

	ref := result.SourceRef()
	ref[0] = '['
	source, err := result.Source()
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(source))
	source[0] = '['
	again, err := result.SourceAsString()
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, again)
}

func TestResult_NoSource(t *testing.T) {
	result, err := Unmarshal([]byte(`{"_id":"1","found":false}`))
	require.NoError(t, err)
	assert.True(t, result.IsSourceEmpty())
	assert.Nil(t, result.SourceRef())
	asMap, err := result.SourceAsMap()
	require.NoError(t, err)
	assert.Nil(t, asMap)
	text, err := result.SourceAsString()
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestField(t *testing.T) {
	values := []interface{}{"a", int64(2)}
	field := NewField("f", values...)
	values[0] = "changed"
	assert.Equal(t, "f", field.Name())
	assert.Equal(t, 2, field.Len())
	assert.Equal(t, "a", field.Value())
	assert.Nil(t, NewField("empty").Value())
}

func TestReadField(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      []interface{}
		hasError    bool
	}{
		{description: "mixed values", input: `{"f":["x",1,2.5,true,null,[1],{"k":"v"}]}`,
			expect: []interface{}{"x", int64(1), 2.5, true, nil, []interface{}{int64(1)}, map[string]interface{}{"k": "v"}}},
		{description: "single value", input: `{"f":[7]}`, expect: []interface{}{int64(7)}},
		{description: "scalar instead of array", input: `{"f":7}`, hasError: true},
		{description: "object instead of array", input: `{"f":{}}`, hasError: true},
	}
	for _, testCase := range testCases {
		scanner := token.NewScanner([]byte(testCase.input))
		_, err := scanner.Next()
		require.NoError(t, err, testCase.description)
		_, err = scanner.Next()
		require.NoError(t, err, testCase.description)
		field, err := ReadField(scanner)
		if testCase.hasError {
			assert.ErrorIs(t, err, ErrUnexpectedToken, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, "f", field.Name(), testCase.description)
		assert.Equal(t, testCase.expect, field.Values(), testCase.description)
		assert.Equal(t, token.EndArray, scanner.Current(), testCase.description)
	}
}

func TestReadField_RequiresFieldName(t *testing.T) {
	scanner := token.NewScanner([]byte(`["f"]`))
	_, err := scanner.Next()
	require.NoError(t, err)
	_, err = ReadField(scanner)
	assert.ErrorIs(t, err, ErrUnexpectedToken)
}
