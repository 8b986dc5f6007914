package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/crystal/lattice"
	"github.com/katalvlaran/crystal/view"
)

// Color palette; no ad-hoc color literals elsewhere.
var (
	colorAccent  = lipgloss.Color("#58a6ff")
	colorText    = lipgloss.Color("#e6edf3")
	colorTextDim = lipgloss.Color("#8b949e")
	colorDivider = lipgloss.Color("#30363d")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Width(12)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorText)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDivider).
			Padding(0, 1)
)

// renderComparison lays two phase summaries out side by side.
func renderComparison(left, right phaseSummary) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		renderSummary(left), "  ", renderSummary(right))
}

// renderSummary formats one phase's derived outputs as a bordered panel.
func renderSummary(s phaseSummary) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(s.title))
	b.WriteByte('\n')
	writeRow(&b, "atoms", fmt.Sprintf("%d", s.set.Len()))
	for _, line := range speciesLines(s.set) {
		writeRow(&b, line.label, line.value)
	}
	writeRow(&b, "bonds", fmt.Sprintf("%d", s.bonds.Len()))
	writeRow(&b, "center", formatVec(s.frame.Center))
	writeRow(&b, "half-extent", fmt.Sprintf("%.3f Å", s.frame.HalfExtent))

	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// renderWire formats the carved wire report.
func renderWire(wire *lattice.AtomSet, frame *view.Frame, length, diameter float64) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("B2 Nitinol Wire"))
	b.WriteByte('\n')
	writeRow(&b, "length", fmt.Sprintf("%.1f Å", length))
	writeRow(&b, "diameter", fmt.Sprintf("%.1f Å", diameter))
	writeRow(&b, "atoms", fmt.Sprintf("%d", wire.Len()))
	for _, line := range speciesLines(wire) {
		writeRow(&b, line.label, line.value)
	}
	writeRow(&b, "center", formatVec(frame.Center))
	writeRow(&b, "half-extent", fmt.Sprintf("%.3f Å", frame.HalfExtent))

	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

type summaryLine struct {
	label, value string
}

// speciesLines resolves the species grouping once, in sorted tag order
// for stable output.
func speciesLines(set *lattice.AtomSet) []summaryLine {
	counts := set.CountBySpecies()
	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, string(tag))
	}
	sort.Strings(tags)

	lines := make([]summaryLine, 0, len(tags))
	for _, tag := range tags {
		lines = append(lines, summaryLine{
			label: tag + " atoms",
			value: fmt.Sprintf("%d", counts[lattice.Species(tag)]),
		})
	}

	return lines
}

func writeRow(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label))
	b.WriteString(valueStyle.Render(value))
	b.WriteByte('\n')
}

func formatVec(v lattice.Vec3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v[0], v[1], v[2])
}
