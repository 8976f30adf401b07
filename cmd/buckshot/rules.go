package main

import (
	"fmt"
	"os"

	"github.com/pxdal/buckshot/internal/config"
)

type RulesCmd struct {
	Write string `short:"o" type:"path" help:"Write the configuration to this file instead of stdout"`
}

func (c *RulesCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	if c.Write != "" {
		if err := config.Save(c.Write, cfg); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", c.Write)
		return nil
	}
	_, err = os.Stdout.Write(config.Encode(cfg))
	return err
}
