package main

import (
	"bufio"
	"io"
	"log"
	"os"
	"strconv"

	"circle-sectors/app"
	"circle-sectors/config"
	"circle-sectors/utils"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

func main() {
	cliapp := makeapp()
	if err := cliapp.Run(os.Args); err != nil {
		utils.Fail(err, "circle-render")
	}
}

func figureCommand(kind, usage string) cli.Command {
	return cli.Command{
		Name:  kind,
		Usage: usage,
		Flags: []cli.Flag{
			cli.IntFlag{Name: "n", Value: 16, Usage: "Number of slices"},
			cli.StringFlag{Name: "format", Value: app.FORMAT_SVG, Usage: "Output format: svg or png"},
			cli.StringFlag{Name: "out", Value: "-", Usage: "Destination file; - writes to stdout"},
			cli.StringFlag{Name: "config", Value: "", Usage: "JSON config file", EnvVar: "CIRCLE_CONFIG"},
			cli.BoolFlag{Name: "debug", Usage: "Enable debug logging"},
		},
		Action: func(c *cli.Context) error {
			return renderAction(kind, c.Int("n"), c.String("format"), c.String("out"), c.String("config"), c.Bool("debug"))
		},
	}
}

func makeapp() *cli.App {
	cliapp := cli.NewApp()
	cliapp.Name = "circle-render"
	cliapp.Usage = "Render a divided circle or its rearranged slices"

	cliapp.Commands = []cli.Command{
		figureCommand("sectors", "Draw the circle cut into n slices"),
		figureCommand("rearranged", "Lay the n slices out as a near-parallelogram"),
	}
	return cliapp
}

func loadConfig(filename string) (config.Config, error) {
	if filename == "" {
		return config.Default(), nil
	}
	return config.Load(filename)
}

func renderAction(kind string, n int, format, out, configFile string, isDebug bool) error {
	debug := utils.Debug(isDebug)

	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}
	debug("layout %+v", cfg.Layout)

	if format != app.FORMAT_SVG && format != app.FORMAT_PNG {
		return errors.Errorf("unknown format %q; use svg or png", format)
	}

	sc, err := app.SceneFor(kind, strconv.Itoa(n), cfg.Layout)
	if err != nil {
		return errors.Wrapf(err, "could not lay out %s", kind)
	}
	debug("%s n=%d ready", kind, n)

	if out == "-" {
		return write(os.Stdout, sc, cfg, format)
	}

	f, err := os.Create(out)
	if err != nil {
		return errors.Wrap(err, "could not create output")
	}
	if err := write(f, sc, cfg, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "could not close %s", out)
	}
	log.Println("Wrote " + out)
	return nil
}

func write(w io.Writer, sc app.Scene, cfg config.Config, format string) error {
	bw := bufio.NewWriter(w)
	if err := app.Encode(bw, sc, cfg.Layout, format); err != nil {
		return err
	}
	return errors.Wrap(bw.Flush(), "could not write output")
}
