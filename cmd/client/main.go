package main

import (
	"context"
	"log"

	"github.com/winkhq/onboard/internal/client/cli"
	"github.com/winkhq/onboard/internal/client/config"
	"github.com/winkhq/onboard/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg, logging.NewDefault())
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
