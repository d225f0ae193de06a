package prefs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "nope", "prefs.yaml"))
	require.NoError(t, err)
	assert.False(t, p.FormCollapsed)
	assert.Empty(t, p.ColumnWidths)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enrolldesk", "prefs.yaml")

	in := &Prefs{
		ColumnWidths:  map[string]int{"email": 40, "course": 24},
		FormCollapsed: true,
		PageSize:      25,
	}
	require.NoError(t, Save(path, in))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in.ColumnWidths, out.ColumnWidths)
	assert.True(t, out.FormCollapsed)
	assert.Equal(t, 25, out.PageSize)
}
