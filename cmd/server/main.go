package main

import (
	"github.com/creativeclicks/studio-backend/config"
	"github.com/creativeclicks/studio-backend/internal/appServer"

	"github.com/sirupsen/logrus"
)

func main() {
	viperInstance, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("cannot load config: %s", err.Error())
	}

	cfg, err := config.ParseConfig(viperInstance)
	if err != nil {
		logrus.Fatalf("cannot parse config: %s", err.Error())
	}

	appServer.NewServer(cfg)
}
