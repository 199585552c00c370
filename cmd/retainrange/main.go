// Command retainrange runs the retain cases of a TOML case file.
//
//	retainrange [-only name] [-verbose] [cases.toml]
package main

import (
	"fmt"
	"os"

	"github.com/mazzegi/log"
	"github.com/mazzegi/retain/cases"
	"github.com/mazzegi/retain/config"
	"github.com/mazzegi/retain/errorx"
)

func main() {
	wd, err := os.Getwd()
	errorx.ExitWhen(err)
	cfg, err := config.Load(wd, os.Args[1:])
	errorx.ExitWhen(err)
	errorx.ExitWhen(run(cfg))
}

func run(cfg config.Config) (err error) {
	defer errorx.Recover(&err)

	cf, err := cases.Load(cfg.Cases)
	if err != nil {
		return fmt.Errorf("load cases: %w", err)
	}
	log.Infof("loaded %d cases from %q", len(cf.Cases), cfg.Cases)

	results, err := cases.NewRunner(cfg.Verbose).Run(cf, cfg.Only)
	if err != nil {
		return err
	}
	for _, res := range results {
		fmt.Printf("%s: %v -> %v\n", res.Case.Name, res.Before, res.After)
	}
	return nil
}
