package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/splitgrid/internal/cli/model"
	"github.com/bnema/splitgrid/internal/cli/styles"
	"github.com/bnema/splitgrid/internal/domain/entity"
	"github.com/bnema/splitgrid/internal/domain/repository"
)

var layoutsJSON bool

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "Manage saved layouts",
	Long: `View and delete the layouts saved by 'splitgrid run'.

Each workspace keeps one layout: the pane tree, the share of every pane,
and which pane was active or zoomed.

Run without arguments to open the interactive layout browser.`,
	RunE: runLayouts,
}

var layoutsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved layouts",
	RunE:  runLayoutsList,
}

var layoutsShowCmd = &cobra.Command{
	Use:   "show <workspace>",
	Short: "Print the pane tree of a saved layout",
	Args:  cobra.ExactArgs(1),
	RunE:  runLayoutsShow,
}

var layoutsDeleteCmd = &cobra.Command{
	Use:     "delete <workspace>",
	Aliases: []string{"rm"},
	Short:   "Delete a saved layout",
	Args:    cobra.ExactArgs(1),
	RunE:    runLayoutsDelete,
}

func init() {
	rootCmd.AddCommand(layoutsCmd)
	layoutsCmd.AddCommand(layoutsListCmd)
	layoutsCmd.AddCommand(layoutsShowCmd)
	layoutsCmd.AddCommand(layoutsDeleteCmd)
	layoutsListCmd.Flags().BoolVar(&layoutsJSON, "json", false, "output as JSON")
	layoutsShowCmd.Flags().BoolVar(&layoutsJSON, "json", false, "output as JSON")
}

func runLayouts(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	m := model.NewLayoutsModel(app.Ctx(), app.Theme, model.LayoutsModelConfig{
		Layouts: app.LayoutsUC,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func runLayoutsList(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	items, err := app.LayoutsUC.List(app.Ctx())
	if err != nil {
		return fmt.Errorf("list layouts: %w", err)
	}

	if layoutsJSON {
		return outputLayoutsJSON(cmd.OutOrStdout(), items)
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewLayoutsCLIRenderer(app.Theme).RenderList(items))
	return nil
}

// layoutJSON is the --json shape of one saved layout.
type layoutJSON struct {
	Workspace string    `json:"workspace"`
	Panes     int       `json:"panes"`
	SizeBytes int64     `json:"size_bytes"`
	UpdatedAt time.Time `json:"updated_at"`
}

func outputLayoutsJSON(w io.Writer, items []repository.LayoutSummary) error {
	out := make([]layoutJSON, 0, len(items))
	for _, item := range items {
		out = append(out, layoutJSON{
			Workspace: string(item.WorkspaceID),
			Panes:     item.PaneCount,
			SizeBytes: item.SizeBytes,
			UpdatedAt: time.Unix(item.UpdatedAt, 0).UTC(),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func runLayoutsShow(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	snap, err := app.LayoutsUC.Get(app.Ctx(), entity.WorkspaceID(args[0]))
	if err != nil {
		return err
	}

	if layoutsJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewLayoutsCLIRenderer(app.Theme).RenderShow(snap))
	return nil
}

func runLayoutsDelete(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewLayoutsCLIRenderer(app.Theme)
	id := entity.WorkspaceID(args[0])
	if err := app.LayoutsUC.Delete(app.Ctx(), id); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderDeleted(id))
	return nil
}
