package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/postill/internal/buildinfo"
	"github.com/dmitrijs2005/postill/internal/cli"
	"github.com/dmitrijs2005/postill/internal/config"
	"github.com/dmitrijs2005/postill/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg, logging.NewDefault())

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
