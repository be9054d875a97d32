// cmd/diagpanel/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/carlmjohnson/versioninfo"
	"github.com/spf13/pflag"

	"github.com/tamzrod/diag-panel/internal/config"
	"github.com/tamzrod/diag-panel/internal/proc"
	"github.com/tamzrod/diag-panel/internal/query"
	"github.com/tamzrod/diag-panel/internal/server"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("diagpanel: %v", err)
	}
}

func run() error {
	flagSet := pflag.NewFlagSet("diagpanel", pflag.ContinueOnError)
	cfgPath := flagSet.StringP("config", "c", "diagpanel.yaml", "path to configuration file")
	listen := flagSet.String("listen", "", "override server listen address")
	showVersion := flagSet.Bool("version", false, "print version and exit")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	if *showVersion {
		fmt.Println("diagpanel", versioninfo.Version)
		return nil
	}

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	config.Normalize(cfg)

	if *listen != "" {
		cfg.Panel.Server.Listen = *listen
	}

	// --------------------
	// Build the pipeline
	// --------------------

	runner := proc.New(
		cfg.Panel.ConfigTool,
		cfg.Panel.ViewerTool,
		time.Duration(cfg.Panel.TimeoutMs)*time.Millisecond,
	)
	facade := query.New(runner)
	srv := server.New(cfg.Panel.Server.Listen, facade, cfg.Panel.DownloadDir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Start(ctx)
}
