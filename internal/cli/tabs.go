package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/p3rf/explorer/internal/sidebar"
	"github.com/p3rf/explorer/pkg/types"
)

func newTabsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tabs",
		Short: "Inspect and navigate the sidebar tab catalog",
	}
	cmd.AddCommand(newTabsListCmd(opts))
	cmd.AddCommand(newTabsWalkCmd(opts))
	return cmd
}

func newTabsListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the configured tabs in catalog order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := opts.catalog()
			if err != nil {
				return err
			}
			if opts.jsonMode {
				return writeJSON(cmd.OutOrStdout(), catalog.Tabs())
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"#", "id", "title", "widget", "hint"})
			for i, tab := range catalog.Tabs() {
				table.Append([]string{strconv.Itoa(i), tab.ID, tab.Title, strconv.FormatBool(tab.RequireWidget), tab.Hint})
			}
			table.Render()
			return nil
		},
	}
}

var errUnknownStep = errors.New("unknown step")

// walkStep is one line of tabs walk output.
type walkStep struct {
	Step     string `json:"step"`
	Found    bool   `json:"found"`
	Selected string `json:"selected"`
	Widget   string `json:"widget"`
}

func newTabsWalkCmd(opts *rootOptions) *cobra.Command {
	var (
		widget string
		from   string
	)

	cmd := &cobra.Command{
		Use:   "walk STEP...",
		Short: "Replay navigation steps against the tab catalog",
		Long: `Replay navigation steps and print the selected tab after each one.

Steps:
  next, prev, first, last, first-widget   move the selection
  select:ID, toggle:ID                    select or toggle a tab (select: clears)
  widget:ID                               select a widget (widget: clears)`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := opts.catalog()
			if err != nil {
				return err
			}
			state := &sidebar.WidgetState{SelectedID: widget}
			nav := sidebar.NewNavigator(catalog, state, sidebar.WithLogger(opts.log))

			if from != "" {
				tab, ok := catalog.ByID(from)
				if !ok {
					return userError(fmt.Errorf("--from: unknown tab %q", from))
				}
				nav.SelectTab(tab)
			}

			steps := make([]walkStep, 0, len(args))
			for _, step := range args {
				found, err := applyStep(nav, state, step)
				if err != nil {
					return userError(fmt.Errorf("step %q: %w", step, err))
				}
				steps = append(steps, walkStep{
					Step:     step,
					Found:    found,
					Selected: tabID(nav.Selected()),
					Widget:   state.SelectedID,
				})
			}
			return printWalk(cmd.OutOrStdout(), steps, opts.jsonMode)
		},
	}

	cmd.Flags().StringVar(&widget, "widget", "", "id of the initially selected widget")
	cmd.Flags().StringVar(&from, "from", "", "id of the initially selected tab")
	return cmd
}

// applyStep runs one walk step. Movement steps select the tab they return;
// found is false when the navigator had no qualifying tab, in which case the
// selection is unchanged.
func applyStep(nav *sidebar.Navigator, state *sidebar.WidgetState, step string) (bool, error) {
	name, arg, hasArg := strings.Cut(step, ":")
	if hasArg {
		switch name {
		case "widget":
			state.Select(arg)
			return true, nil
		case "select", "toggle":
			var tab *types.Tab
			if arg != "" {
				t, ok := nav.Catalog().ByID(arg)
				if !ok {
					return false, fmt.Errorf("unknown tab %q", arg)
				}
				tab = t
			}
			if name == "select" {
				nav.SelectTab(tab)
			} else {
				nav.ToggleTab(tab)
			}
			return true, nil
		default:
			return false, errUnknownStep
		}
	}

	var (
		tab *types.Tab
		ok  bool
		err error
	)
	switch name {
	case "next":
		tab, ok, err = nav.GetNextTab()
	case "prev", "previous":
		tab, ok, err = nav.GetPreviousTab()
	case "first":
		tab, ok = nav.GetFirstTab(), true
	case "last":
		tab, ok = nav.GetLastTab()
	case "first-widget":
		tab, ok = nav.GetFirstWidgetTab()
	default:
		return false, errUnknownStep
	}
	if err != nil {
		return false, err
	}
	if ok {
		nav.SelectTab(tab)
	}
	return ok, nil
}

func printWalk(w io.Writer, steps []walkStep, jsonMode bool) error {
	if jsonMode {
		return writeJSON(w, steps)
	}
	for _, s := range steps {
		selected := s.Selected
		if selected == "" {
			selected = "-"
		}
		if !s.Found {
			selected += " (not found)"
		}
		widget := s.Widget
		if widget == "" {
			widget = "-"
		}
		fmt.Fprintf(w, "%-22s %-32s widget=%s\n", s.Step, selected, widget)
	}
	return nil
}

func tabID(tab *types.Tab) string {
	if tab == nil {
		return ""
	}
	return tab.ID
}
