package main

import (
	"tripdesk/config"
	"tripdesk/di"
	"tripdesk/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
