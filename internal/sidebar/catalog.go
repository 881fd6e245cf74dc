package sidebar

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/p3rf/explorer/pkg/types"
)

// Catalog is a fixed, ordered, non-empty sequence of tabs. Tabs are stored
// by pointer and never replaced, so a *types.Tab obtained from a Catalog
// keeps its identity for the catalog's lifetime.
type Catalog struct {
	tabs []*types.Tab
	byID map[string]*types.Tab
}

// NewCatalog copies tabs into a new Catalog. It rejects an empty list and
// empty or duplicate ids, reporting every violation found.
func NewCatalog(tabs []types.Tab) (*Catalog, error) {
	if len(tabs) == 0 {
		return nil, types.ErrEmptyCatalog
	}

	var result *multierror.Error
	c := &Catalog{
		tabs: make([]*types.Tab, len(tabs)),
		byID: make(map[string]*types.Tab, len(tabs)),
	}
	for i := range tabs {
		tab := tabs[i]
		switch {
		case tab.ID == "":
			result = multierror.Append(result, fmt.Errorf("tab %d: %w", i, types.ErrEmptyTabID))
		case c.byID[tab.ID] != nil:
			result = multierror.Append(result, fmt.Errorf("tab %d %q: %w", i, tab.ID, types.ErrDuplicateTabID))
		}
		c.tabs[i] = &tab
		if tab.ID != "" && c.byID[tab.ID] == nil {
			c.byID[tab.ID] = c.tabs[i]
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return c, nil
}

// MustCatalog is like NewCatalog but panics on error. It is meant for
// literal catalogs such as DefaultTabs.
func MustCatalog(tabs []types.Tab) *Catalog {
	c, err := NewCatalog(tabs)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of tabs.
func (c *Catalog) Len() int { return len(c.tabs) }

// At returns the tab at position i. It panics if i is out of range.
func (c *Catalog) At(i int) *types.Tab { return c.tabs[i] }

// ByID returns the tab with the given id.
func (c *Catalog) ByID(id string) (*types.Tab, bool) {
	tab, ok := c.byID[id]
	return tab, ok
}

// IndexOf returns the position of tab compared by identity, or -1.
func (c *Catalog) IndexOf(tab *types.Tab) int {
	for i, t := range c.tabs {
		if t == tab {
			return i
		}
	}
	return -1
}

// Tabs returns the tabs in catalog order. The slice is a copy; the tabs
// are shared.
func (c *Catalog) Tabs() []*types.Tab {
	out := make([]*types.Tab, len(c.tabs))
	copy(out, c.tabs)
	return out
}
