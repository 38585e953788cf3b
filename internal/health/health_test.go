package health

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eargollo/plotify/internal/db"
)

func TestProbeHealthyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plotify.db")
	require.NoError(t, db.Build(context.Background(), path, db.Dataset{
		Classes: []db.Class{
			{ID: 1, Teacher: "Alice", Students: []db.Student{{Name: "ann", Attributes: []string{"X", "Y"}}}},
			{ID: 2, Teacher: "Alice"},
			{ID: 3, Teacher: "Bob", Students: []db.Student{{Name: "ben", Attributes: []string{"X"}}}},
		},
	}))

	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	p := NewProbe(path)
	p.now = func() time.Time { return fixed }

	assert.Nil(t, p.Last())

	res := p.Run(context.Background())
	assert.True(t, res.OK)
	assert.Empty(t, res.Error)
	assert.Equal(t, int64(2), res.Teachers)
	assert.Equal(t, int64(2), res.Attributes)
	assert.Equal(t, fixed, res.CheckedAt)

	last := p.Last()
	require.NotNil(t, last)
	assert.Equal(t, res, *last)
}

func TestProbeMissingStore(t *testing.T) {
	p := NewProbe(filepath.Join(t.TempDir(), "absent.db"))

	res := p.Run(context.Background())
	assert.False(t, res.OK)
	assert.NotEmpty(t, res.Error)
	require.NotNil(t, p.Last())
	assert.False(t, p.Last().OK)
}
