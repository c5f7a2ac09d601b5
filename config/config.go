package config

import (
	"encoding/json"
	"io/ioutil"

	"circle-sectors/board"
	"circle-sectors/geometry"

	"github.com/pkg/errors"
)

type BoardConfig struct {
	Color string  `json:"color"`
	Width float64 `json:"width"`
}

type Config struct {
	Addr string `json:"addr"`
	// InitialCount is the count textbox content the UI starts with.
	InitialCount string          `json:"initialCount"`
	Layout       geometry.Config `json:"layout"`
	Board        BoardConfig     `json:"board"`
}

func Default() Config {
	return Config{
		Addr:         ":8080",
		InitialCount: "16",
		Layout:       geometry.DefaultConfig(),
		Board: BoardConfig{
			Color: "#000000",
			Width: 2,
		},
	}
}

// Load reads a JSON config file. Fields missing from the file keep their
// defaults.
func Load(filename string) (Config, error) {
	cfg := Default()
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return cfg, errors.Wrap(err, "could not read config")
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "could not parse config %s", filename)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid config %s", filename)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr must be provided in the configuration")
	}
	if err := c.Layout.Validate(); err != nil {
		return err
	}
	if _, err := board.ParseColor(c.Board.Color); err != nil {
		return errors.Wrap(err, "board color")
	}
	if c.Board.Width <= 0 {
		return errors.Errorf("board width %g must be positive", c.Board.Width)
	}
	return nil
}
