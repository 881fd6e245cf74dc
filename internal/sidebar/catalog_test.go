package sidebar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p3rf/explorer/pkg/types"
)

func TestNewCatalog(t *testing.T) {
	t.Run("default tabs", func(t *testing.T) {
		c, err := NewCatalog(DefaultTabs())
		require.NoError(t, err)
		assert.Equal(t, 7, c.Len())
		assert.Equal(t, TabDashboard, c.At(0).ID)
		assert.Equal(t, TabWidgetColumns, c.At(6).ID)
	})

	t.Run("empty catalog", func(t *testing.T) {
		_, err := NewCatalog(nil)
		assert.ErrorIs(t, err, types.ErrEmptyCatalog)
	})

	t.Run("reports every bad id", func(t *testing.T) {
		_, err := NewCatalog([]types.Tab{{ID: "a"}, {ID: ""}, {ID: "a"}})
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrEmptyTabID)
		assert.ErrorIs(t, err, types.ErrDuplicateTabID)
	})
}

func TestCatalogIsImmutable(t *testing.T) {
	src := DefaultTabs()
	c := MustCatalog(src)

	src[0].ID = "changed"
	assert.Equal(t, TabDashboard, c.At(0).ID)

	tabs := c.Tabs()
	tabs[0] = nil
	assert.NotNil(t, c.At(0))
}

func TestCatalogLookup(t *testing.T) {
	c := MustCatalog(DefaultTabs())

	tab, ok := c.ByID(TabWidgetChart)
	require.True(t, ok)
	assert.Equal(t, "Chart Config", tab.Title)
	assert.Equal(t, 5, c.IndexOf(tab))

	_, ok = c.ByID("nope")
	assert.False(t, ok)

	lookalike := *tab
	assert.Equal(t, -1, c.IndexOf(&lookalike), "lookup is by identity, not by value")
}

func TestDefaultTabsPresentation(t *testing.T) {
	tabs := DefaultTabs()
	var widgetTabs int
	for _, tab := range tabs {
		assert.NotEmpty(t, tab.Title)
		assert.NotEmpty(t, tab.IconClass)
		assert.NotEmpty(t, tab.Hint)
		assert.NotEmpty(t, tab.TabClass)
		assert.NotEmpty(t, tab.PanelTitleClass)
		assert.NotEmpty(t, tab.PanelClass)
		assert.NotEmpty(t, tab.ToolbarClass)
		if tab.RequireWidget {
			widgetTabs++
		}
	}
	assert.Equal(t, 5, widgetTabs)
	assert.False(t, tabs[0].RequireWidget)
	assert.False(t, tabs[1].RequireWidget)
}
