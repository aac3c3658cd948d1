package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/rating"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/theme"
)

// printer renders tables to one writer, styled for a theme mode.
type printer struct {
	out      io.Writer
	renderer *lipgloss.Renderer
	mode     theme.Mode
}

func newPrinter(out io.Writer, mode theme.Mode) *printer {
	return &printer{out: out, renderer: lipgloss.NewRenderer(out), mode: mode}
}

// grid is a table whose cells may carry a percentile swatch.
type grid struct {
	title    string
	headers  []string
	rows     [][]string
	swatches map[cell]rating.Swatch
}

type cell struct{ row, col int }

func newGrid(title string, headers ...string) *grid {
	return &grid{title: title, headers: headers, swatches: map[cell]rating.Swatch{}}
}

func (g *grid) add(values ...string) int {
	g.rows = append(g.rows, values)
	return len(g.rows) - 1
}

// shade colors one cell with the swatch's ramp color.
func (g *grid) shade(row, col int, sw rating.Swatch) {
	g.swatches[cell{row, col}] = sw
}

func (p *printer) borderColor() lipgloss.Color {
	if p.mode == theme.Dark {
		return lipgloss.Color("#6C7086")
	}
	return lipgloss.Color("#9CA0B0")
}

func (p *printer) render(g *grid) error {
	base := p.renderer.NewStyle().Padding(0, 1)
	header := base.Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(p.renderer.NewStyle().Foreground(p.borderColor())).
		Headers(g.headers...).
		Rows(g.rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if sw, ok := g.swatches[cell{row, col}]; ok {
				return base.
					Background(lipgloss.Color(sw.Color.Hex())).
					Foreground(lipgloss.Color("#1E1E2E"))
			}
			return base
		})

	if g.title != "" {
		if _, err := fmt.Fprintln(p.out, header.Render(g.title)); err != nil {
			return err
		}
	}
	if len(g.rows) == 0 {
		_, err := fmt.Fprintln(p.out, base.Italic(true).Render("no rows"))
		return err
	}
	_, err := fmt.Fprintln(p.out, t.Render())
	return err
}

func stat(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

func pctStat(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
