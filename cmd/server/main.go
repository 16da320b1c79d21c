package main

import (
	"context"
	"log"
	"os"

	"github.com/avelichko/careernet/internal/buildinfo"
	"github.com/avelichko/careernet/internal/server"
	"github.com/avelichko/careernet/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
