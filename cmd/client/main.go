package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ContactHub/internal/cli/commands"
	"ContactHub/internal/config"

	"go.uber.org/zap"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// env + флаги
	cfg := config.NewConfig()

	if cfg.Version {
		printVersion()
		return
	}

	// подробный лог только по -v, иначе вывод команд не засоряется
	if cfg.Verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		defer func() { _ = logger.Sync() }()
		commands.SetLogger(logger.Sugar())
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	exitCode := commands.Dispatch(ctx, cfg, flag.Args())
	if exitCode == 0 {
		return
	}
	cancel()
	os.Exit(exitCode)
}

func printVersion() {
	fmt.Printf("ContactHub CLI\nVersion: %s\nBuild date: %s\n", version, buildDate)
}
