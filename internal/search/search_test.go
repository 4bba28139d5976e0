package search

import (
	"testing"

	"github.com/cristianoliveira/velvetpour/internal/carousel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var menu = []string{"Classic Mojito", "Raspberry Mojito", "Violet Breeze", "Curacao Mojito"}

func TestBest(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantIndex int
		wantOK    bool
	}{
		{name: "exact", query: "Violet Breeze", wantIndex: 2, wantOK: true},
		{name: "case and spacing", query: "  violet   BREEZE ", wantIndex: 2, wantOK: true},
		{name: "prefix", query: "rasp", wantIndex: 1, wantOK: true},
		{name: "word prefix", query: "bree", wantIndex: 2, wantOK: true},
		{name: "substring prefers list order", query: "mojito", wantIndex: 0, wantOK: true},
		{name: "typo", query: "curacoa", wantIndex: 3, wantOK: true},
		{name: "typo in full name", query: "clasic mojto", wantIndex: 0, wantOK: true},
		{name: "no match", query: "negroni", wantOK: false},
		{name: "empty", query: "   ", wantOK: false},
	}

	m := NewMatcher()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.Best(tt.query, menu)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantIndex, got.Index)
				assert.Equal(t, menu[tt.wantIndex], got.Name)
			}
		})
	}
}

func TestRankOrdersByScore(t *testing.T) {
	m := NewMatcher()

	got := m.Rank("mojito", []string{"Mojito Royale", "Mojito", "Frozen Mojito"})

	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].Index)
	assert.Equal(t, scoreExact, got[0].Score)
	assert.Equal(t, 0, got[1].Index)
	assert.Equal(t, 2, got[2].Index)
}

func TestWithMaxDistance(t *testing.T) {
	strict := NewMatcher(WithMaxDistance(1))
	_, ok := strict.Best("vilot brze", menu)
	assert.False(t, ok)

	loose := NewMatcher(WithMaxDistance(4))
	got, ok := loose.Best("vilot brze", menu)
	require.True(t, ok)
	assert.Equal(t, 2, got.Index)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"0", 0},
		{"2", 2},
		{"-1", 3},
		{"9", 1},
		{" violet ", 2},
		{"curacoa", 3},
	}
	m := NewMatcher()
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := m.Resolve(tt.query, menu)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveErrors(t *testing.T) {
	m := NewMatcher()

	_, err := m.Resolve("negroni", menu)
	assert.ErrorIs(t, err, ErrNoMatch)

	_, err = m.Resolve("1", nil)
	assert.ErrorIs(t, err, carousel.ErrInvalidConfiguration)
}
