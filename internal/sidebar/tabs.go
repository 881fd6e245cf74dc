// Package sidebar holds the explorer's editor tab catalog and the navigator
// that moves the tab selection.
package sidebar

import "github.com/p3rf/explorer/pkg/types"

// Tab ids of the built-in explorer catalog.
const (
	TabDashboard        = "dashboard"
	TabContainer        = "container"
	TabWidgetConfig     = "widget.config"
	TabWidgetDataFilter = "widget.data.filter"
	TabWidgetDataResult = "widget.data.result"
	TabWidgetChart      = "widget.chart"
	TabWidgetColumns    = "widget.columns"
)

// DefaultTabs returns the built-in explorer catalog. The first tab is a
// non-widget tab, which forward wraparound relies on.
func DefaultTabs() []types.Tab {
	return []types.Tab{
		{
			ID: TabDashboard, Title: "Dashboard", IconClass: "fa fa-dashcube",
			Hint:     "Dashboard title and properties",
			TabClass: "dashboard-tab", PanelTitleClass: "dashboard-panel-title",
			PanelClass: "dashboard-panel", ToolbarClass: "dashboard-toolbar",
		},
		{
			ID: TabContainer, Title: "Container", IconClass: "fa fa-dropbox",
			Hint:     "Container properties and text",
			TabClass: "dashboard-tab", PanelTitleClass: "dashboard-panel-title",
			PanelClass: "dashboard-panel", ToolbarClass: "dashboard-toolbar",
		},
		{
			ID: TabWidgetConfig, Title: "Widget", IconClass: "fa fa-cube",
			Hint: "Widget title and appearance", RequireWidget: true,
			TabClass: "widget-tab", PanelTitleClass: "widget-panel-title",
			PanelClass: "widget-panel", ToolbarClass: "widget-toolbar",
		},
		{
			ID: TabWidgetDataFilter, Title: "Data Filters", IconClass: "fa fa-filter",
			Hint: "Query filters and constraints", RequireWidget: true,
			TabClass: "bqgviz-tab", PanelTitleClass: "bqgviz-panel-title",
			PanelClass: "bqgviz-panel", ToolbarClass: "bqgviz-toolbar",
		},
		{
			ID: TabWidgetDataResult, Title: "Data Results", IconClass: "fa fa-table",
			Hint: "Query columns and results", RequireWidget: true,
			TabClass: "bqgviz-tab", PanelTitleClass: "bqgviz-panel-title",
			PanelClass: "bqgviz-panel", ToolbarClass: "bqgviz-toolbar",
		},
		{
			ID: TabWidgetChart, Title: "Chart Config", IconClass: "fa fa-bar-chart",
			Hint: "Chart type and settings", RequireWidget: true,
			TabClass: "bqgviz-tab", PanelTitleClass: "bqgviz-panel-title",
			PanelClass: "bqgviz-panel", ToolbarClass: "bqgviz-toolbar",
		},
		{
			ID: TabWidgetColumns, Title: "Columns", IconClass: "fa fa-columns",
			Hint: "Column styling and order", RequireWidget: true,
			TabClass: "widget-tab", PanelTitleClass: "widget-panel-title",
			PanelClass: "widget-panel", ToolbarClass: "widget-toolbar",
		},
	}
}
