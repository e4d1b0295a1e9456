package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/young-sensey/dochub/internal/buildinfo"
	"github.com/young-sensey/dochub/internal/client/cli"
	"github.com/young-sensey/dochub/internal/client/config"
	"github.com/young-sensey/dochub/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	// interactive output goes to stdout; diagnostics stay on stderr
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
