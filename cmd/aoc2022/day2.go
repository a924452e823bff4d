package main

import (
	"strings"

	"github.com/lox/adventofcode2022/internal/fileutil"
	"github.com/lox/adventofcode2022/internal/report"
	"github.com/lox/adventofcode2022/internal/rps"
)

// Day2Cmd scores a rock-paper-scissors strategy guide.
type Day2Cmd struct {
	Input  string `arg:"" optional:"" name:"input" help:"Path to the strategy guide (overrides config)"`
	Decode string `short:"d" help:"Read the second column as 'hands' (part 1) or 'outcomes' (part 2)"`
	Report string `short:"r" help:"Write the result as HCL to this file (defaults to output.report_dir)"`
}

func (cmd *Day2Cmd) Run(app *App) error {
	input := cmd.Input
	if input == "" {
		input = app.Config.Day2.Input
	}
	decodeName := cmd.Decode
	if decodeName == "" {
		decodeName = app.Config.Day2.Decode
	}
	decoding, err := rps.ParseDecoding(decodeName)
	if err != nil {
		return err
	}

	text, err := fileutil.ReadInput(input)
	if err != nil {
		return err
	}
	rounds, err := rps.ParseGuide(strings.NewReader(text), decoding)
	if err != nil {
		return err
	}

	tally := rps.Play(rounds)
	app.Logger.Debug("scored strategy guide",
		"input", input,
		"decode", decoding,
		"rounds", tally.Rounds())

	if err := renderTally(app.Out, tally); err != nil {
		return err
	}

	path := app.reportPath(cmd.Report, "day2.hcl")
	if path == "" {
		return nil
	}
	rep := report.Day2{
		Day:         2,
		GeneratedAt: report.Timestamp(app.Clock.Now()),
		Input:       input,
		Decode:      string(decoding),
		Rounds:      tally.Rounds(),
		Wins:        tally.Wins,
		Losses:      tally.Losses,
		Draws:       tally.Draws,
		TotalScore:  tally.TotalScore,
	}
	if err := report.Write(path, &rep); err != nil {
		return err
	}
	app.Logger.Info("report written", "path", path)
	return nil
}
