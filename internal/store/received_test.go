package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReceivedIndex_Record(t *testing.T) {
	r := NewReceivedIndex()
	assert.Empty(t, r.Last())

	r.Record("a.txt", "/inbox/a.txt")
	assert.Equal(t, "a.txt", r.Last())

	path, ok := r.PathFor("a.txt")
	assert.True(t, ok)
	assert.Equal(t, "/inbox/a.txt", path)
}

func TestReceivedIndex_EmptyPathKeepsKnownOne(t *testing.T) {
	r := NewReceivedIndex()
	r.Record("a.txt", "/inbox/a.txt")
	r.Record("a.txt", "")

	path, ok := r.PathFor("a.txt")
	assert.True(t, ok)
	assert.Equal(t, "/inbox/a.txt", path)
}

func TestReceivedIndex_SeedLast(t *testing.T) {
	r := NewReceivedIndex()

	r.SeedLast("old.txt")
	assert.Equal(t, "old.txt", r.Last())

	r.SeedLast("older.txt")
	assert.Equal(t, "old.txt", r.Last(), "seeding never overwrites a known last file")

	r.Record("fresh.txt", "")
	r.SeedLast("stale.txt")
	assert.Equal(t, "fresh.txt", r.Last())
}

func TestReceivedIndex_Forget(t *testing.T) {
	r := NewReceivedIndex()
	r.Record("a.txt", "/inbox/a.txt")

	r.Forget("a.txt")
	_, ok := r.PathFor("a.txt")
	assert.False(t, ok)
	assert.Equal(t, "a.txt", r.Last(), "forgetting a path keeps the last-file name")
}
