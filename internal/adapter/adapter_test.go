package adapter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type named string

func (n named) Name() string   { return string(n) }
func (n named) Banner() string { return "banner " + string(n) }

func TestExample(t *testing.T) {
	a, err := Default.Lookup("example")
	require.NoError(t, err)
	assert.Equal(t, "example", a.Name())
	assert.Equal(t, "daggerml adapter scaffold: example", a.Banner())
}

func TestRegistry(t *testing.T) {
	var r Registry
	require.NoError(t, r.Register(named("b")))
	require.NoError(t, r.Register(named("a")))
	assert.Equal(t, []string{"a", "b"}, r.Names())

	err := r.Register(named("a"))
	require.Error(t, err)
	assert.Equal(t, "adapter already registered: a", err.Error())

	require.Error(t, r.Register(named("")))

	_, err = r.Lookup("missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestEmptyRegistry(t *testing.T) {
	var r Registry
	assert.Empty(t, r.Names())
	_, err := r.Lookup("example")
	assert.ErrorIs(t, err, ErrNotFound)
}
