package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/printgraph/internal/demo"
)

// listCommand creates the list command for showing the bundled samples.
func (c *CLI) listCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the sample graphs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if plain {
				return writeSampleList(c.stdout, demo.All())
			}
			return writeSampleTable(c.stdout, demo.All())
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print one sample name per line")

	return cmd
}

// writeSampleList prints sample names, one per line.
func writeSampleList(w io.Writer, samples []demo.Sample) error {
	for _, s := range samples {
		if _, err := fmt.Fprintln(w, s.Name); err != nil {
			return err
		}
	}
	return nil
}

// writeSampleTable prints samples with their traversal counts.
func writeSampleTable(w io.Writer, samples []demo.Sample) error {
	rows := make([][]string, 0, len(samples))
	for _, s := range samples {
		st, err := s.Stats()
		if err != nil {
			return fmt.Errorf("summarize %s: %w", s.Name, err)
		}
		rows = append(rows, []string{
			s.Name,
			s.Description,
			strconv.Itoa(st.Nodes),
			strconv.Itoa(st.BackRefs),
			strconv.Itoa(st.MaxDepth),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Sample", "Description", "Nodes", "Back-refs", "Depth").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle.Padding(0, 1)
			case col == 0:
				return cellStyle.Foreground(colorCyan)
			case col >= 2:
				return cellStyle.Foreground(colorWhite).Align(lipgloss.Right)
			default:
				return cellStyle.Foreground(colorGray)
			}
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
