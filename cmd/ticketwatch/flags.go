package main

import (
	"flag"
)

type AppFlags struct {
	ConfigFile string
	StateFile  string
}

func ParseFlags() AppFlags {
	configFile := flag.String("config", "", "Path to the YAML/JSON configuration file. If not set, searches default locations.")
	configFileAlias := flag.String("c", "", "Alias for -config")

	stateFile := flag.String("state", "", "Path to the state file (overrides storage_config.state_file_path)")
	stateFileAlias := flag.String("s", "", "Alias for -state")

	flag.Parse()

	flags := AppFlags{}

	if *configFile != "" {
		flags.ConfigFile = *configFile
	} else if *configFileAlias != "" {
		flags.ConfigFile = *configFileAlias
	}

	if *stateFile != "" {
		flags.StateFile = *stateFile
	} else if *stateFileAlias != "" {
		flags.StateFile = *stateFileAlias
	}

	return flags
}
