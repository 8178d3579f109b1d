package main

import (
	"github.com/lite-lake/infra-dnsfilters/internal/infrastructure/logger"
	"github.com/lite-lake/infra-dnsfilters/internal/interfaces/cli"
)

func main() {
	logger.Init(logger.ConfigFromEnv())

	cli.Execute()
}
