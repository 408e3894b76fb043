package main

import (
	"context"
	"log"
	"os"

	"tacticalalloc/cmd"
	"tacticalalloc/internal/app"
	"tacticalalloc/internal/logger"
	"tacticalalloc/internal/scheduler"
	"tacticalalloc/internal/util"
)

func main() {
	cfg, err := util.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	lg := logger.New()
	lg.Infof("starting api, commit %s", os.Getenv("commit_hash"))

	deps, err := cmd.InitializeDependencies(logger.NewContext(context.Background(), lg), cfg, lg)
	if err != nil {
		lg.Fatal(err)
	}

	if cfg.Schedule != "" {
		s := scheduler.New(lg)
		err = s.AddJob(cfg.Schedule, app.RebalanceJob{Rebalancer: deps.Rebalancer})
		if err != nil {
			lg.Fatal(err)
		}
		s.Start()
		defer s.Stop()
	}

	err = deps.ApiHandler.StartApi(cfg.Port)
	if err != nil {
		lg.Fatal(err)
	}
}
