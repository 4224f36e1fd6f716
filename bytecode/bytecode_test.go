package bytecode_test

import (
	"testing"

	"github.com/loxlang/loxcore/bytecode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeLoadNumberRoundTrips(t *testing.T) {
	buf := bytecode.Encode(nil, bytecode.LoadNumber, 3.5, 0, false)
	decoded, err := bytecode.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, bytecode.LoadNumber, decoded.Op)
	assert.Equal(t, 3.5, decoded.NumberArg)
	assert.Equal(t, len(buf), decoded.Size)
}

func TestEncodeDecodeLoadStringRoundTrips(t *testing.T) {
	pool := bytecode.NewStringPool()
	sym := pool.Intern("hello")

	buf := bytecode.Encode(nil, bytecode.LoadString, 0, sym, false)
	decoded, err := bytecode.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, sym, decoded.StringArg)

	s, ok := pool.Lookup(decoded.StringArg)
	require.True(t, ok)
	assert.Equal(t, "hello", s)
}

func TestEncodeDecodeLoadBoolRoundTrips(t *testing.T) {
	for _, b := range []bool{true, false} {
		buf := bytecode.Encode(nil, bytecode.LoadBool, 0, 0, b)
		decoded, err := bytecode.Decode(buf)
		require.NoError(t, err)
		assert.Equal(t, b, decoded.BoolArg)
	}
}

func TestDecodeInvalidBoolByte(t *testing.T) {
	buf := []byte{byte(bytecode.LoadBool), 7}
	_, err := bytecode.Decode(buf)
	require.Error(t, err)
}

func TestDecodeNoEnoughData(t *testing.T) {
	buf := []byte{byte(bytecode.LoadNumber), 1, 2, 3}
	_, err := bytecode.Decode(buf)
	require.Error(t, err)
}

func TestStringPoolInternDedupes(t *testing.T) {
	pool := bytecode.NewStringPool()
	a := pool.Intern("x")
	b := pool.Intern("x")
	c := pool.Intern("y")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestSequenceOfOperationsRoundTrips(t *testing.T) {
	pool := bytecode.NewStringPool()
	sym := pool.Intern("answer")

	var buf []byte
	buf = bytecode.Encode(buf, bytecode.LoadNumber, 40, 0, false)
	buf = bytecode.Encode(buf, bytecode.LoadNumber, 2, 0, false)
	buf = bytecode.Encode(buf, bytecode.Plus, 0, 0, false)
	buf = bytecode.Encode(buf, bytecode.LoadString, 0, sym, false)

	var ops []bytecode.Operation
	for len(buf) > 0 {
		decoded, err := bytecode.Decode(buf)
		require.NoError(t, err)
		ops = append(ops, decoded.Op)
		buf = buf[decoded.Size:]
	}
	assert.Equal(t, []bytecode.Operation{
		bytecode.LoadNumber, bytecode.LoadNumber, bytecode.Plus, bytecode.LoadString,
	}, ops)
}
