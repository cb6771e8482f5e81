package cli

import (
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/techradar/pkg/io"
	"github.com/matzehuels/techradar/pkg/layout"
)

func (c *CLI) inspectCommand() *cobra.Command {
	var blips string

	cmd := &cobra.Command{
		Use:   "inspect <radar.toml|layout.json>",
		Short: "Browse blip placements interactively",
		Long: `Open a terminal browser over the placement outcome of every blip.

The input is either a radar definition, which is laid out first, or a
layout document written by "techradar render -f json".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0], blips)
			if err != nil {
				return err
			}
			c.Logger.Debug("loaded layout", "placed", len(doc.Blips), "skipped", len(doc.Skipped))

			p := tea.NewProgram(NewInspectModel(doc),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
	cmd.Flags().StringVar(&blips, "blips", "", "JSON or YAML file with additional blips")
	return cmd
}

// loadDocument reads a layout document, or builds one from a definition.
// JSON files holding a "regions" key are treated as layout documents.
func loadDocument(path, blips string) (layout.Document, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") && blips == "" {
		if doc, err := pkgio.ImportDocument(path); err == nil && len(doc.Regions) > 0 {
			return doc, nil
		}
	}
	def, err := loadDefinition(path, blips)
	if err != nil {
		return layout.Document{}, err
	}
	l, err := layout.Build(def)
	if err != nil {
		return layout.Document{}, err
	}
	return l.Export(), nil
}
