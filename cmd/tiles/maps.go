package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tiles/internal/registry"
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List all available maps",
	Long:  `Shows every built-in map plus those registered with --map-dir.`,
	Args:  cobra.NoArgs,
	RunE:  runMaps,
}

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func runMaps(cmd *cobra.Command, _ []string) error {
	_, _, closeLog, err := setup()
	if err != nil {
		return err
	}
	defer closeLog()

	out := cmd.OutOrStdout()
	maps := registry.List()
	if len(maps) == 0 {
		fmt.Fprintln(out, "No maps available.")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("ID", "Title", "Size").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, m := range maps {
		t.Row(m.ID, m.Title, fmt.Sprintf("%dx%d", m.Width, m.Height))
	}

	fmt.Fprintln(out, t.Render())
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'tiles --map <id>' to play a map.")
	return nil
}
