package cli

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bloom/pkg/anim"
	"github.com/matzehuels/bloom/pkg/flower"
	"github.com/matzehuels/bloom/pkg/geometry"
)

// infoCommand creates the info command that prints the computed geometry.
func (c *CLI) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the computed flower geometry",
		Long: `Show the computed flower geometry.

Prints the circle arrangement, one row per petal (axis, extent, tip, veins)
and one row per overlap region, followed by the cycle timing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, f, err := c.scene()
			if err != nil {
				return err
			}

			fmt.Println(StyleTitle.Render("Flower"))
			printKeyValue("center", formatPoint(f.Center))
			printKeyValue("offset", geometry.FormatFloat(f.Offset))
			printKeyValue("radius", geometry.FormatFloat(f.Radius))
			printKeyValue("profile", cfg.Profile().Name)
			printKeyValue("cycle", cfg.AnimTiming().CycleDuration(len(anim.DefaultGrowth)).String())
			printKeyValue("rounds", fmt.Sprint(len(cfg.CaptionRounds())))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			fmt.Fprintln(out, infoTable([]string{"Petal", "Angle", "Circles", "Extent", "Tip", "Veins"}, petalRows(f)))
			fmt.Fprintln(out, infoTable([]string{"Overlap", "Circles", "Vertices", "Size"}, overlapRows(f)))
			return nil
		},
	}
}

func infoTable(headers []string, rows [][]string) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		Render()
}

func petalRows(f *flower.Flower) [][]string {
	rows := make([][]string, 0, len(f.Petals))
	for _, p := range f.Petals {
		deg := p.Angle * 180 / math.Pi
		rows = append(rows, []string{
			fmt.Sprint(p.Index),
			geometry.FormatFloat(deg) + "°",
			fmt.Sprintf("%d,%d", p.Circles[0], p.Circles[1]),
			geometry.FormatFloat(p.MaxExtent),
			formatPoint(p.Tip),
			fmt.Sprint(len(p.Veins)),
		})
	}
	return rows
}

func overlapRows(f *flower.Flower) [][]string {
	rows := make([][]string, 0, len(f.Overlaps))
	for _, o := range f.Overlaps {
		size := "empty"
		if !o.Path.IsEmpty() {
			b := o.Path.Bounds()
			size = geometry.FormatFloat(b.Width()) + "×" + geometry.FormatFloat(b.Height())
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d-%d", o.Petals[0], o.Petals[1]),
			fmt.Sprintf("%d,%d,%d", o.Circles[0], o.Circles[1], o.Circles[2]),
			fmt.Sprint(len(o.Path.Segments)),
			size,
		})
	}
	return rows
}

func formatPoint(p geometry.Point) string {
	return "(" + geometry.FormatFloat(p.X) + ", " + geometry.FormatFloat(p.Y) + ")"
}
