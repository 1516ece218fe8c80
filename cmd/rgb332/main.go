package main

import (
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/rgb332"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newConverter(c *cli.Context) (*rgb332.Converter, error) {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	var db *rgb332.TableDB
	if file := c.String("db"); file != "" {
		var err error
		if db, err = rgb332.NewTableDB(file); err != nil {
			return nil, err
		}
	}

	return rgb332.New(db, logger), nil
}

func convert(c *cli.Context) error {
	file := rgb332.DefaultFile
	if c.NArg() > 0 {
		file = c.Args().First()
	}

	r, err := newConverter(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer r.Close()

	if err := r.Convert(file, c.App.Writer); err != nil {
		return cli.NewExitError(err, 1)
	}

	return nil
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "rgb332"
	app.Usage = "Convert PNG images to RGB332 firmware tables"
	app.Version = "1.0.0"
	app.ArgsUsage = "[FILE]"
	app.Action = convert

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"RGB332_DB"},
			Usage:   "path to table cache database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Write the RGB332 table of a PNG image to stdout",
			Description: "FILE defaults to " + rgb332.DefaultFile + " in the current directory.",
			ArgsUsage:   "[FILE]",
			Action:      convert,
		},
		{
			Name:        "scan",
			Usage:       "Convert every PNG image under a directory",
			Description: "Each table is written next to its image with a " + rgb332.TableExt + " extension.",
			ArgsUsage:   "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				r, err := newConverter(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer r.Close()

				if err := r.Scan(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
