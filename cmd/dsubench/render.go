package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/disjointset"
	"github.com/papapumpkin/disjointset/internal/workload"
)

// Chart color palette.
var (
	colorDense  = lipgloss.Color("#00BFFF") // Cyan for dense engine bars
	colorSparse = lipgloss.Color("#FFD700") // Gold for sparse engine bars
	colorMuted  = lipgloss.Color("#636363") // Gray for footer and scale
)

var (
	styleChartTitle = lipgloss.NewStyle().Bold(true)
	styleDenseBar   = lipgloss.NewStyle().Foreground(colorDense)
	styleSparseBar  = lipgloss.NewStyle().Foreground(colorSparse)
	styleChartMuted = lipgloss.NewStyle().Foreground(colorMuted)
)

// chartRenderer draws benchmark results as a grouped horizontal bar
// chart, one group per scenario with one bar per engine.
type chartRenderer struct {
	Width    int
	UseColor bool
}

// Render produces the chart. Bars are scaled against the slowest result
// so the whole run shares one axis.
func (r chartRenderer) Render(suite workload.Suite, results []Result) string {
	var b strings.Builder

	header := fmt.Sprintf("disjointset %s  n=%d ops=%d seed=%d",
		disjointset.Version, suite.N, suite.Ops, suite.Seed)
	b.WriteString(r.styled(styleChartTitle, header))
	b.WriteString("\n\n")

	slowest := 0.0
	for _, res := range results {
		if res.Seconds > slowest {
			slowest = res.Seconds
		}
	}
	if slowest == 0 {
		slowest = 1
	}

	barWidth := r.Width
	if barWidth < 16 {
		barWidth = 16
	}

	// Group results by scenario, preserving run order.
	var order []string
	byScenario := make(map[string][]Result, len(results))
	for _, res := range results {
		if _, ok := byScenario[res.Scenario]; !ok {
			order = append(order, res.Scenario)
		}
		byScenario[res.Scenario] = append(byScenario[res.Scenario], res)
	}

	for _, name := range order {
		b.WriteString(name)
		b.WriteString("\n")
		for _, res := range byScenario[name] {
			filled := int(res.Seconds / slowest * float64(barWidth))
			if filled < 1 {
				filled = 1
			}
			style := styleDenseBar
			if res.Engine == engineSparse {
				style = styleSparseBar
			}
			bar := r.styled(style, strings.Repeat("█", filled))
			b.WriteString(fmt.Sprintf("  %-7s %s %.4fs\n", res.Engine, bar, res.Seconds))
		}
	}

	b.WriteString("\n")
	footer := fmt.Sprintf("bars scaled to slowest run (%.4fs)", slowest)
	b.WriteString(r.styled(styleChartMuted, footer))
	b.WriteString("\n")
	return b.String()
}

// styled applies st when color is enabled, otherwise returns s unchanged.
func (r chartRenderer) styled(st lipgloss.Style, s string) string {
	if !r.UseColor {
		return s
	}
	return st.Render(s)
}
