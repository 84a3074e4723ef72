package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteProviderRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "core.sqlite")
	p, err := NewSQLite(path)
	require.NoError(t, err)
	defer p.Close()

	_, ok := p.Get("leads")
	assert.False(t, ok)

	require.NoError(t, p.Set("leads", `[{"id":"a"}]`))
	v, ok := p.Get("leads")
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"a"}]`, v)

	// Set on an existing key overwrites the whole blob.
	require.NoError(t, p.Set("leads", `[]`))
	v, ok = p.Get("leads")
	assert.True(t, ok)
	assert.Equal(t, `[]`, v)
}

func TestSQLiteProviderSurvivesReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "core.sqlite")

	p, err := NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, p.Set("holdings", `[{"id":"h-1"}]`))
	require.NoError(t, p.Close())

	p, err = NewSQLite(path)
	require.NoError(t, err)
	defer p.Close()

	v, ok := p.Get("holdings")
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"h-1"}]`, v)
}

func TestSQLiteBackedStore(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "core.sqlite")
	p, err := NewSQLite(path)
	require.NoError(t, err)
	defer p.Close()

	s := Open[note](p, "notes")
	added, err := s.Add(note{Text: "durable"})
	require.NoError(t, err)

	reopened := Open[note](p, "notes")
	require.Equal(t, 1, reopened.Len())
	assert.Equal(t, added, reopened.List()[0])
}
