package main

import (
	"fmt"

	"github.com/lox/adventofcode2022/internal/calories"
	"github.com/lox/adventofcode2022/internal/fileutil"
	"github.com/lox/adventofcode2022/internal/report"
	"github.com/lox/adventofcode2022/internal/statistics"
)

// Day1Cmd finds the elves carrying the most calories.
type Day1Cmd struct {
	Input  string `arg:"" optional:"" name:"input" help:"Path to the puzzle input (overrides config)"`
	Top    int    `short:"t" help:"How many of the largest totals to sum (overrides config)"`
	Stats  bool   `short:"s" help:"Print summary statistics over all elves"`
	Report string `short:"r" help:"Write the result as HCL to this file (defaults to output.report_dir)"`
}

func (cmd *Day1Cmd) Run(app *App) error {
	input := cmd.Input
	if input == "" {
		input = app.Config.Day1.Input
	}
	top := cmd.Top
	if top <= 0 {
		top = app.Config.Day1.Top
	}

	text, err := fileutil.ReadInput(input)
	if err != nil {
		return err
	}
	totals, err := calories.Parse(text)
	if err != nil {
		return err
	}
	app.Logger.Debug("parsed input", "input", input, "elves", len(totals))

	most := calories.Max(totals)
	best := calories.Top(totals, top)
	if err := renderCalories(app.Out, most, best, calories.Sum(best)); err != nil {
		return err
	}

	if cmd.Stats {
		stats := &statistics.Statistics{}
		for _, t := range totals {
			stats.Add(t)
		}
		if err := stats.Validate(); err != nil {
			return err
		}
		fmt.Fprintln(app.Out)
		if err := renderStats(app.Out, stats); err != nil {
			return err
		}
	}

	path := app.reportPath(cmd.Report, "day1.hcl")
	if path == "" {
		return nil
	}
	rep := report.Day1{
		Day:          1,
		GeneratedAt:  report.Timestamp(app.Clock.Now()),
		Input:        input,
		Elves:        len(totals),
		MostCalories: most,
		Top:          best,
		TopTotal:     calories.Sum(best),
	}
	if err := report.Write(path, &rep); err != nil {
		return err
	}
	app.Logger.Info("report written", "path", path)
	return nil
}
