package main

import (
	"errors"
	"io"

	"github.com/lox/adventofcode2022/internal/fileutil"
	"github.com/lox/adventofcode2022/internal/randutil"
	"github.com/lox/adventofcode2022/internal/rps"
)

// GenerateCmd deals a random strategy guide for day 2.
type GenerateCmd struct {
	Rounds int    `short:"n" default:"2500" help:"Number of rounds to deal"`
	Seed   *int64 `help:"Random seed for reproducible guides"`
	Out    string `short:"o" help:"Write the guide to this file instead of stdout"`
}

func (cmd *GenerateCmd) Run(app *App) error {
	if cmd.Rounds <= 0 {
		return errors.New("generate requires a positive number of rounds")
	}

	seed := randutil.ResolveSeed(cmd.Seed, app.Clock)
	app.Logger.Info("generating strategy guide", "rounds", cmd.Rounds, "seed", seed)

	guide := rps.FormatGuide(rps.Generate(randutil.New(seed), cmd.Rounds))
	if cmd.Out == "" {
		_, err := io.WriteString(app.Out, guide)
		return err
	}
	return fileutil.WriteFileAtomic(cmd.Out, []byte(guide), 0o644)
}
