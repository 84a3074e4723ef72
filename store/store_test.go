package store

import (
	"errors"
	"testing"

	"github.com/kumaryash98110-netizen/investcore/pkg/id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func (n note) RecordID() string { return n.ID }

func (n note) WithID(recordID string) note {
	n.ID = recordID
	return n
}

func TestAddAssignsIDAndPrepends(t *testing.T) {
	t.Parallel()

	s := Open[note](NewMemory(), "notes", WithIDFunc[note](id.Sequential("n")))

	first, err := s.Add(note{Text: "first"})
	require.NoError(t, err)
	assert.Equal(t, "n-1", first.ID)
	assert.Equal(t, 1, s.Len())

	second, err := s.Add(note{Text: "second"})
	require.NoError(t, err)
	assert.Equal(t, "n-2", second.ID)

	recs := s.List()
	require.Len(t, recs, 2)
	assert.Equal(t, "second", recs[0].Text)
	assert.Equal(t, "first", recs[1].Text)
}

func TestRemove(t *testing.T) {
	t.Parallel()

	s := Open[note](NewMemory(), "notes", WithIDFunc[note](id.Sequential("n")))

	a, err := s.Add(note{Text: "a"})
	require.NoError(t, err)
	b, err := s.Add(note{Text: "b"})
	require.NoError(t, err)

	require.NoError(t, s.Remove(a.ID))
	assert.Equal(t, 1, s.Len())
	for _, r := range s.List() {
		assert.NotEqual(t, a.ID, r.ID)
	}

	// Removing an absent id is a no-op.
	require.NoError(t, s.Remove("n-999"))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, b.ID, s.List()[0].ID)
}

func TestLoadRoundTrip(t *testing.T) {
	t.Parallel()

	p := NewMemory()
	s := Open[note](p, "notes")

	_, err := s.Add(note{Text: "keep, me"})
	require.NoError(t, err)
	_, err = s.Add(note{Text: "newest"})
	require.NoError(t, err)

	reopened := Open[note](p, "notes")
	assert.Equal(t, s.List(), reopened.List())
}

func TestOpenMissingKey(t *testing.T) {
	t.Parallel()

	s := Open[note](NewMemory(), "nothing-here")
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.List())
}

func TestOpenCorruptBlobResetsEmpty(t *testing.T) {
	t.Parallel()

	p := NewMemory()
	require.NoError(t, p.Set("notes", "{not json"))

	s := Open[note](p, "notes")
	assert.Equal(t, 0, s.Len())

	// The store stays usable after the reset.
	_, err := s.Add(note{Text: "fresh"})
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
}

// failingProvider accepts nothing, to exercise the persist failure path.
type failingProvider struct{}

func (failingProvider) Get(string) (string, bool) { return "", false }
func (failingProvider) Set(string, string) error  { return errors.New("backend down") }

func TestMutationFailureLeavesCollectionUnchanged(t *testing.T) {
	t.Parallel()

	s := Open[note](failingProvider{}, "notes")

	_, err := s.Add(note{Text: "doomed"})
	assert.Error(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestListReturnsCopy(t *testing.T) {
	t.Parallel()

	s := Open[note](NewMemory(), "notes")
	_, err := s.Add(note{Text: "original"})
	require.NoError(t, err)

	recs := s.List()
	recs[0].Text = "mutated"
	assert.Equal(t, "original", s.List()[0].Text)
}
