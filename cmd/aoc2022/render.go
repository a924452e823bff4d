package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/adventofcode2022/internal/rps"
	"github.com/lox/adventofcode2022/internal/statistics"
)

var (
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	drawStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	totalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))
)

func renderTally(w io.Writer, tally rps.Tally) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", labelStyle.Render("Wins:"), winStyle.Render(fmt.Sprint(tally.Wins)))
	fmt.Fprintf(tw, "%s\t%s\n", labelStyle.Render("Losses:"), lossStyle.Render(fmt.Sprint(tally.Losses)))
	fmt.Fprintf(tw, "%s\t%s\n", labelStyle.Render("Draws:"), drawStyle.Render(fmt.Sprint(tally.Draws)))
	fmt.Fprintf(tw, "%s\t%s\n", labelStyle.Render("Total Score:"), totalStyle.Render(fmt.Sprint(tally.TotalScore)))
	return tw.Flush()
}

func renderCalories(w io.Writer, most int, top []int, sum int) error {
	parts := make([]string, len(top))
	for i, t := range top {
		parts[i] = fmt.Sprint(t)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", labelStyle.Render("Most Calories:"), totalStyle.Render(fmt.Sprint(most)))
	fmt.Fprintf(tw, "%s\t%s\n", labelStyle.Render(fmt.Sprintf("Top %d:", len(top))), strings.Join(parts, " "))
	fmt.Fprintf(tw, "%s\t%s\n", labelStyle.Render(fmt.Sprintf("Top %d Total:", len(top))), totalStyle.Render(fmt.Sprint(sum)))
	return tw.Flush()
}

func renderStats(w io.Writer, stats *statistics.Statistics) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
		labelStyle.Render("elves"),
		labelStyle.Render("mean"),
		labelStyle.Render("median"),
		labelStyle.Render("p90"),
		labelStyle.Render("stddev"),
		labelStyle.Render("min"),
		labelStyle.Render("max"))
	fmt.Fprintf(tw, "%d\t%.1f\t%.1f\t%.1f\t%.1f\t%d\t%d\n",
		stats.Count, stats.Mean(), stats.Median(), stats.Percentile(0.9), stats.StdDev(), stats.Min, stats.Max)
	return tw.Flush()
}
