package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"pixmill/internal/config"
	"pixmill/internal/engine"
	"pixmill/internal/logging"
	"pixmill/internal/shell"
)

func main() {
	cfgPath := flag.String("config", config.DefaultPath, "path to the YAML config file")
	initCfg := flag.Bool("init-config", false, "write the default config file and exit")
	flag.Parse()

	logging.InitFromEnv()

	if *initCfg {
		if err := config.WriteDefault(*cfgPath); err != nil {
			log.Fatalf("init config: %v", err)
		}
		fmt.Printf("wrote %s\n", *cfgPath)
		return
	}

	if flag.NArg() != 1 {
		log.Fatalf("usage: pixmill [flags] <image file>")
	}
	imagePath := flag.Arg(0)
	if _, err := os.Stat(imagePath); err != nil {
		log.Fatalf("input image: %v", err)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logging.Configure(logging.Options{Level: cfg.Log.Level, JSON: cfg.Log.JSON})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eng, err := engine.Bootstrap(cfg, imagePath)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	if err := shell.New(eng, os.Stdin, os.Stdout).Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("shell: %v", err)
	}
}
