package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/coder/quartz"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `short:"c" default:"aoc2022.hcl" help:"Path to HCL configuration file"`
	LogLevel string           `short:"l" help:"Log level: debug, info, warn or error (overrides config)"`
	Color    string           `help:"Colour output: auto, always or never (overrides config)"`

	Day1     Day1Cmd     `cmd:"day1" help:"Count the calories carried by each elf"`
	Day2     Day2Cmd     `cmd:"day2" help:"Score a rock-paper-scissors strategy guide"`
	Generate GenerateCmd `cmd:"" help:"Write a random strategy guide"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("aoc2022"),
		kong.Description("Advent of Code 2022 solutions"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	app, err := NewApp(cli, os.Stdout, os.Stderr, quartz.NewReal())
	ctx.FatalIfErrorf(err)

	err = ctx.Run(app)
	ctx.FatalIfErrorf(err)
}
