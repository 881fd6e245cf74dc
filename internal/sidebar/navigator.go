package sidebar

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/p3rf/explorer/pkg/types"
)

// Option configures a Navigator.
type Option func(*Navigator)

// WithLogger sets the logger that receives not-found diagnostics.
func WithLogger(l logrus.FieldLogger) Option {
	return func(n *Navigator) { n.log = l }
}

// Navigator is a cursor over a Catalog. Its movement rules depend on
// whether a widget is selected, which it reads from a WidgetSelection on
// every call.
//
// Forward wraparound always lands on the catalog's first tab, while backward
// wraparound lands on GetLastTab, which honors the widget filter.
//
// A Navigator is not safe for concurrent use.
type Navigator struct {
	catalog  *Catalog
	widgets  WidgetSelection
	selected *types.Tab
	log      logrus.FieldLogger
}

// NewNavigator returns a Navigator with no tab selected. A nil widgets is
// treated as a widget selection that is always empty.
func NewNavigator(catalog *Catalog, widgets WidgetSelection, opts ...Option) *Navigator {
	if widgets == nil {
		widgets = WidgetSelectionFunc(func() bool { return false })
	}
	n := &Navigator{
		catalog: catalog,
		widgets: widgets,
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(n)
	}
	if first := catalog.At(0); first.RequireWidget {
		n.log.WithField("tab", first.ID).Warn("first tab requires a widget; forward wraparound may land on a widget tab")
	}
	return n
}

// Catalog returns the catalog being navigated.
func (n *Navigator) Catalog() *Catalog { return n.catalog }

// Selected returns the selected tab, or nil.
func (n *Navigator) Selected() *types.Tab { return n.selected }

// SelectTab selects tab, which must be nil or a member of the catalog.
func (n *Navigator) SelectTab(tab *types.Tab) {
	n.selected = tab
}

// ToggleTab clears the selection if tab is the selected tab and selects tab
// otherwise.
func (n *Navigator) ToggleTab(tab *types.Tab) {
	if n.selected == tab {
		n.selected = nil
		return
	}
	n.SelectTab(tab)
}

// GetFirstWidgetTab returns the first tab that requires a widget.
func (n *Navigator) GetFirstWidgetTab() (*types.Tab, bool) {
	for _, tab := range n.catalog.tabs {
		if tab.RequireWidget {
			return tab, true
		}
	}
	n.log.Warn("getFirstWidgetTab failed: no widget tabs available")
	return nil, false
}

// GetFirstTab returns the first tab of the catalog.
func (n *Navigator) GetFirstTab() *types.Tab {
	return n.catalog.tabs[0]
}

// GetLastTab returns the last tab when a widget is selected, and the last
// tab that does not require a widget otherwise.
func (n *Navigator) GetLastTab() (*types.Tab, bool) {
	tabs := n.catalog.tabs
	if n.widgets.WidgetSelected() {
		return tabs[len(tabs)-1], true
	}
	for i := len(tabs) - 1; i >= 0; i-- {
		if !tabs[i].RequireWidget {
			return tabs[i], true
		}
	}
	n.log.Warn("getLastTab failed: no non-widget tabs available")
	return nil, false
}

// GetNextTab returns the tab after the selected one.
//
// With no selection it returns GetFirstTab. With a widget selected the next
// tab in catalog order qualifies whatever its widget requirement; without
// one, the next tab that does not require a widget. When nothing qualifies
// it wraps to GetFirstTab. The error is non-nil only when the selected tab
// is not a member of the catalog.
func (n *Navigator) GetNextTab() (*types.Tab, bool, error) {
	if n.selected == nil {
		return n.GetFirstTab(), true, nil
	}
	i, err := n.selectedIndex()
	if err != nil {
		return nil, false, err
	}

	tabs := n.catalog.tabs
	if n.widgets.WidgetSelected() {
		if i+1 < len(tabs) {
			return tabs[i+1], true, nil
		}
	} else {
		for j := i + 1; j < len(tabs); j++ {
			if !tabs[j].RequireWidget {
				return tabs[j], true, nil
			}
		}
	}
	return n.GetFirstTab(), true, nil
}

// GetPreviousTab mirrors GetNextTab scanning backward. With no selection,
// and when nothing qualifies, it returns GetLastTab, whose not-found result
// it passes through.
func (n *Navigator) GetPreviousTab() (*types.Tab, bool, error) {
	if n.selected == nil {
		tab, ok := n.GetLastTab()
		return tab, ok, nil
	}
	i, err := n.selectedIndex()
	if err != nil {
		return nil, false, err
	}

	tabs := n.catalog.tabs
	if n.widgets.WidgetSelected() {
		if i-1 >= 0 {
			return tabs[i-1], true, nil
		}
	} else {
		for j := i - 1; j >= 0; j-- {
			if !tabs[j].RequireWidget {
				return tabs[j], true, nil
			}
		}
	}
	tab, ok := n.GetLastTab()
	return tab, ok, nil
}

func (n *Navigator) selectedIndex() (int, error) {
	i := n.catalog.IndexOf(n.selected)
	if i < 0 {
		return -1, fmt.Errorf("%w: selected tab %q not in catalog", types.ErrPrecondition, n.selected.ID)
	}
	return i, nil
}
