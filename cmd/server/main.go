package main

import (
	"context"
	"log"

	"github.com/soorajjain/taskBuddy-alter/internal/server"
	"github.com/soorajjain/taskBuddy-alter/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
