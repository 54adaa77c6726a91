package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

var (
	Version   = "dev"
	GitCommit = "-"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Version = fmt.Sprintf("%s(%s)", Version, GitCommit)
	app.Name = "lvtile"
	app.Usage = "Decide whether floor plans can be tiled by 1x2 dominoes"
	app.Description = `
        A floor plan is text: '#' is an obstacle, every other character
        is an open cell, and each line is a row. A plan is tileable when
        its open cells can be covered exactly by non-overlapping dominoes.

        Example:
            printf '..\n..\n' | lvtile check --show`

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "log.json",
			Usage: "[optional] Log as JSON",
		},
		cli.BoolFlag{
			Name:  "log.debug",
			Usage: "[optional] Log debug info, including every augmenting path",
		},
	}

	app.Commands = []cli.Command{
		checkCommand(),
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
