package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hitanshu04/coldleads-ai/internal/api"
	"github.com/hitanshu04/coldleads-ai/internal/config"
)

type server interface {
	Start(ctx context.Context, addr string) error
}

var (
	loadConfig = func() (config.Config, error) {
		return config.Load(), nil
	}
	newServer = func(caps *api.Capabilities, cfg config.Config) server {
		return api.NewServer(caps, cfg)
	}
	notifyContext = signal.NotifyContext
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx, cancel := notifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	caps := api.NewCapabilities(cfg)
	server := newServer(caps, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("ColdLeads listening on %s", addr)
	if err := server.Start(ctx, addr); err != nil {
		return err
	}

	return nil
}
