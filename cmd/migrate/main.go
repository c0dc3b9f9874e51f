package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/starke/backend/internal/config"
	"github.com/starke/backend/internal/logging"
	"github.com/starke/backend/internal/repository"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate [command]

Commands:
  (default)   create the messages and budgets tables if missing
  reset       drop both tables and recreate them empty`)
	os.Exit(1)
}

func main() {
	_ = godotenv.Load()
	_ = godotenv.Load("../.env")
	logging.Setup()
	cfg := config.Load()

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer pool.Close()

	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "":
	case "reset":
		if err := repository.DropSchema(ctx, pool); err != nil {
			logging.Fatal("reset failed", "error", err)
		}
		slog.Info("tables dropped")
	default:
		usage()
	}

	if err := repository.EnsureSchema(ctx, pool); err != nil {
		logging.Fatal("schema apply failed", "error", err)
	}
	slog.Info("schema up to date")
}
