package main

import (
	"os"

	"deathroll/engine"
	"deathroll/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()

	app.Name = "deathroll"
	app.Usage = meta.Name
	app.Version = meta.Version

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "debug, d",
			Usage: "log game transitions to stderr",
		},
	}

	app.Action = play
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("deathroll exited")
	}
}

func play(c *cli.Context) error {
	// stdout belongs to the game screen
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if c.Bool("debug") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	return engine.NewLocal(os.Stdin, os.Stdout).Run()
}
