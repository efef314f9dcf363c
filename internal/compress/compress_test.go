package compress

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	var testCases = []struct {
		description string
		input       []byte
	}{
		{description: "small object", input: []byte(`{"a":1}`)},
		{description: "repetitive payload", input: []byte(`{"tags":["x","x","x","x","x","x","x","x","x","x","x","x"]}`)},
	}
	for _, testCase := range testCases {
		encoded := Encode(testCase.input)
		assert.True(t, IsCompressed(encoded), testCase.description)
		decoded, err := Decode(encoded)
		require.NoError(t, err, testCase.description)
		assert.Equal(t, string(testCase.input), string(decoded), testCase.description)
	}
}

func TestDecode_PlainPassThrough(t *testing.T) {
	plain := []byte(`{"a":1}`)
	assert.False(t, IsCompressed(plain))
	decoded, err := Decode(plain)
	require.NoError(t, err)
	assert.Equal(t, plain, decoded)
}

func TestEncodeDecode_Concurrent(t *testing.T) {
	input := []byte(`{"title":"concurrent","n":[1,2,3,4,5,6,7,8]}`)
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			decoded, err := Decode(Encode(input))
			if err == nil && string(decoded) != string(input) {
				err = errors.New("round trip mismatch")
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestDecode_CorruptFrame(t *testing.T) {
	encoded := Encode([]byte(`{"a":"corrupt me please, corrupt me please"}`))
	corrupt := append([]byte(nil), encoded[:len(magic)+2]...)
	_, err := Decode(corrupt)
	assert.Error(t, err)
}
