package main

import (
	"log"
	"os"

	"circle-sectors/config"
	"circle-sectors/server"
	"circle-sectors/utils"

	"github.com/urfave/cli"
)

func main() {
	cliapp := cli.NewApp()
	cliapp.Name = "circle-server"
	cliapp.Usage = "Serve the circle figures and the drawing board over HTTP"
	cliapp.Flags = []cli.Flag{
		cli.StringFlag{Name: "addr", Value: "", Usage: "Listen address; overrides the config file"},
		cli.StringFlag{Name: "config", Value: "", Usage: "JSON config file", EnvVar: "CIRCLE_CONFIG"},
	}
	cliapp.Action = func(c *cli.Context) error {
		serveAction(c.String("addr"), c.String("config"))
		return nil
	}
	if err := cliapp.Run(os.Args); err != nil {
		utils.Fail(err, "circle-server")
	}
}

func serveAction(addr, configFile string) {
	cfg := config.Default()
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		utils.Check(err, "Could not load config")
	}
	if addr != "" {
		cfg.Addr = addr
	}

	log.Printf("circle-server: canvas %gx%g, radius %g, initial count %q",
		cfg.Layout.CanvasWidth, cfg.Layout.CanvasHeight, cfg.Layout.CircleRadius, cfg.InitialCount)

	srv, err := server.New(cfg, os.Stdout)
	utils.Check(err, "Could not start the server")
	utils.Check(srv.ListenAndServe(), "Server stopped")
}
