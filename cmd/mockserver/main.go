package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/winkhq/onboard/internal/logging"
	"github.com/winkhq/onboard/internal/mockapi"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := mockapi.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	srv, err := mockapi.NewServer(cfg, logging.NewDefault())
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := srv.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
