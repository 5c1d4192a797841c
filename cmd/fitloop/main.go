package main

import (
	"flag"
	"os"

	"github.com/gmsas95/fitloop-cli/internal/cli"
)

var (
	configPath = flag.String("config", "", "Path to config file")
	dataDir    = flag.String("data", "", "Path to data directory")
	version    = "dev"
)

func main() {
	flag.Parse()
	cli.Version = version
	os.Exit(cli.Run(flag.Args(), *configPath, *dataDir))
}
