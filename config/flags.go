package config

import "flag"

var CliArgs *CliConfig

type CliConfig struct {
	EnvFile string
	Debug   bool
	Version bool
}

func ParseArgs() {
	if CliArgs != nil {
		panic("already defined")
	}
	CliArgs = &CliConfig{}
	flag.StringVar(&CliArgs.EnvFile, "env-file", "", "Path to a .env file to load before reading settings")
	flag.BoolVar(&CliArgs.Debug, "d", false, "Force debug logging")
	flag.BoolVar(&CliArgs.Debug, "debug", false, "Force debug logging")
	flag.BoolVar(&CliArgs.Version, "v", false, "Print version and exit")
	flag.Parse()
}
