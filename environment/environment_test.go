package environment_test

import (
	"testing"

	"github.com/loxlang/loxcore/environment"
	"github.com/loxlang/loxcore/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefineThenGet(t *testing.T) {
	g := environment.NewGlobal()
	g.Define("x", value.Number(1))

	v, err := g.Get("x")
	require.NoError(t, err)
	assert.Equal(t, value.Number(1), v)
}

func TestGetUndefinedFails(t *testing.T) {
	g := environment.NewGlobal()
	_, err := g.Get("missing")
	require.Error(t, err)
	var undef *environment.UndefinedVariable
	assert.ErrorAs(t, err, &undef)
}

func TestAssignUndefinedFails(t *testing.T) {
	g := environment.NewGlobal()
	err := g.Assign("missing", value.Number(1))
	require.Error(t, err)
}

func TestDefineOverwritesExisting(t *testing.T) {
	g := environment.NewGlobal()
	g.Define("x", value.Number(1))
	g.Define("x", value.Number(2))

	v, err := g.Get("x")
	require.NoError(t, err)
	assert.Equal(t, value.Number(2), v)
}

func TestAssignUpdatesExisting(t *testing.T) {
	g := environment.NewGlobal()
	g.Define("x", value.Number(1))
	require.NoError(t, g.Assign("x", value.Number(9)))

	v, err := g.Get("x")
	require.NoError(t, err)
	assert.Equal(t, value.Number(9), v)
}
