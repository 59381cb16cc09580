package analyze

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/movie-costar/models"
	"github.com/dtnitsch/movie-costar/pkg/help"
)

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "corpus",
			Aliases: []string{"c"},
			Usage:   "corpus file, one movie per line (repeatable)",
			EnvVars: []string{"COSTAR_CORPUS"},
		},
		&cli.StringFlag{
			Name:    "encoding",
			Value:   models.DefaultEncoding,
			Usage:   "corpus charset: windows-1252, latin-1 or utf-8",
			EnvVars: []string{"COSTAR_ENCODING"},
		},
		&cli.IntFlag{
			Name:    "workers",
			Aliases: []string{"w"},
			Usage:   "parallel workers (0 = one per CPU)",
			EnvVars: []string{"COSTAR_WORKERS"},
		},
		&cli.IntFlag{
			Name:    "top",
			Value:   models.DefaultTopN,
			Usage:   "number of top pairs to report",
			EnvVars: []string{"COSTAR_TOP"},
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   models.DefaultFormat,
			Usage:   "output format: json, yaml or text",
			EnvVars: []string{"COSTAR_FORMAT"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "write the summary to this file instead of stdout",
			EnvVars: []string{"COSTAR_OUTPUT"},
		},
		&cli.StringFlag{
			Name:    "sqlite",
			Usage:   "also export pairs and best partners to this SQLite file",
			EnvVars: []string{"COSTAR_SQLITE"},
		},
		&cli.StringFlag{
			Name:    "config",
			Usage:   "YAML config file; flags override its values",
			EnvVars: []string{"COSTAR_CONFIG"},
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "only log errors",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "log debug details",
		},
	}
}

// Commands returns the CLI commands of the tool.
func Commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "analyze",
			Usage:  "Compute corpus statistics and actor co-occurrence",
			Flags:  commonFlags(),
			Action: AnalyzeAction,
		},
		{
			Name:   "pairs",
			Usage:  "Print the actor pairs sharing the most movies",
			Flags:  commonFlags(),
			Action: PairsAction,
		},
		{
			Name:  "coldstart",
			Usage: "Print a YAML quick start",
			Action: func(c *cli.Context) error {
				_, err := fmt.Fprint(c.App.Writer, help.ColdstartYAML)
				return err
			},
		},
	}
}
