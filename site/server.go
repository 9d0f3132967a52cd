// Package main serves this directory for local previews of the site.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"

	"github.com/f4ah6o/promptsandmore/internal/devserver"
)

func main() {
	port := flag.Int("port", devserver.DefaultPort, "Port to serve on")
	dir := flag.String("dir", "", "Directory to serve (default: the directory containing this server)")
	configPath := flag.String("config", "", "Optional TOML or YAML config file")
	flag.Parse()

	cfg := devserver.DefaultConfig()
	if *configPath != "" {
		loaded, err := devserver.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Port = *port
		case "dir":
			cfg.Root = *dir
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	_, entrypoint, _, _ := runtime.Caller(0)
	root, err := devserver.ResolveRoot(cfg.Root, entrypoint)
	if err != nil {
		log.Fatalf("Failed to resolve directory: %v", err)
	}
	if err := os.Chdir(root); err != nil {
		log.Fatalf("Failed to enter %s: %v", root, err)
	}
	cfg.Root = root

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := devserver.New(cfg, os.Stdout).Run(ctx); err != nil {
		stop()
		log.Fatalf("Server error: %v", err)
	}
}
