package scope

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseRunsCleanupsInReverseOrder(t *testing.T) {
	s := New()
	var order []string
	s.AddFunc(func() { order = append(order, "watcher") })
	s.AddFunc(func() { order = append(order, "gate") })
	s.AddFunc(func() { order = append(order, "store") })

	require.NoError(t, s.Close())
	assert.Equal(t, []string{"store", "gate", "watcher"}, order)
	assert.True(t, s.Closed())
}

func TestCloseRunsOnce(t *testing.T) {
	var s Scope
	calls := 0
	s.AddFunc(func() { calls++ })

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	assert.Equal(t, 1, calls)
}

func TestCloseJoinsErrorsAndKeepsGoing(t *testing.T) {
	s := New()
	errFirst := errors.New("first")
	errSecond := errors.New("second")
	ran := false
	require.NoError(t, s.Add(func() error { return errFirst }))
	s.AddFunc(func() { ran = true })
	require.NoError(t, s.Add(func() error { return errSecond }))

	err := s.Close()
	require.Error(t, err)
	assert.ErrorIs(t, err, errFirst)
	assert.ErrorIs(t, err, errSecond)
	assert.True(t, ran)
}

func TestAddAfterCloseRunsImmediately(t *testing.T) {
	s := New()
	require.NoError(t, s.Close())

	ran := false
	s.AddFunc(func() { ran = true })
	assert.True(t, ran)
}

func TestAddAfterCloseReturnsCleanupError(t *testing.T) {
	s := New()
	require.NoError(t, s.Close())
	errLate := errors.New("watcher already gone")

	assert.ErrorIs(t, s.Add(func() error { return errLate }), errLate)
	assert.NoError(t, s.Add(func() error { return nil }))
}

func TestNilCleanupsIgnored(t *testing.T) {
	s := New()
	assert.NoError(t, s.Add(nil))
	s.AddFunc(nil)
	assert.NoError(t, s.Close())
}
