// Tab descriptors for the explorer sidebar.
package types

// Tab describes one editor panel. Only ID and RequireWidget drive
// navigation; the remaining fields are presentation metadata passed through
// to the rendering layer unchanged.
type Tab struct {
	ID              string `json:"id" yaml:"id" mapstructure:"id"`
	Title           string `json:"title" yaml:"title" mapstructure:"title"`
	IconClass       string `json:"icon_class" yaml:"icon_class" mapstructure:"icon_class"`
	Hint            string `json:"hint" yaml:"hint" mapstructure:"hint"`
	RequireWidget   bool   `json:"require_widget" yaml:"require_widget" mapstructure:"require_widget"`
	TabClass        string `json:"tab_class" yaml:"tab_class" mapstructure:"tab_class"`
	PanelTitleClass string `json:"panel_title_class" yaml:"panel_title_class" mapstructure:"panel_title_class"`
	PanelClass      string `json:"panel_class" yaml:"panel_class" mapstructure:"panel_class"`
	ToolbarClass    string `json:"toolbar_class" yaml:"toolbar_class" mapstructure:"toolbar_class"`
}
