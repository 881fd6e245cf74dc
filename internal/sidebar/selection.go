package sidebar

// WidgetSelection reports whether a content widget is currently selected in
// the editor. The navigator reads it on every call and never caches it.
type WidgetSelection interface {
	WidgetSelected() bool
}

// WidgetSelectionFunc adapts a function to WidgetSelection.
type WidgetSelectionFunc func() bool

// WidgetSelected implements WidgetSelection.
func (f WidgetSelectionFunc) WidgetSelected() bool { return f() }

// WidgetState holds the id of the selected widget, empty when none is.
type WidgetState struct {
	SelectedID string
}

// WidgetSelected implements WidgetSelection.
func (s *WidgetState) WidgetSelected() bool { return s.SelectedID != "" }

// Select marks the widget with id as selected. An empty id clears the
// selection.
func (s *WidgetState) Select(id string) { s.SelectedID = id }
