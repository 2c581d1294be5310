package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/sharenodes/internal/buildinfo"
	"github.com/dmitrijs2005/sharenodes/internal/cli"
	"github.com/dmitrijs2005/sharenodes/internal/config"
	"github.com/dmitrijs2005/sharenodes/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := logging.NewTextLogger(os.Stderr, slog.LevelWarn)
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
