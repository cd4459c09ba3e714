package main

import (
	"context"
	"log"
	"os"

	"github.com/peopleoverparty/pop/internal/cli"
	"github.com/peopleoverparty/pop/internal/config"
	"github.com/peopleoverparty/pop/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewDefault(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer app.Close()

	app.Run(ctx)

}
