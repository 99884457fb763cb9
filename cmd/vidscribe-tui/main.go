package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/handiism/vidscribe/internal/config"
	"github.com/handiism/vidscribe/internal/tui"
)

func main() {
	var (
		configFlag  = flag.String("config", "", "Path to config file")
		baseURLFlag = flag.String("base-url", "", "Backend base URL (overrides config)")
		verboseFlag = flag.Bool("verbose", false, "Show verbose messages")
	)
	flag.Parse()

	config.LoadDotEnv()
	configPath := *configFlag
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	settings, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	settings.ApplyEnv()

	if *baseURLFlag != "" {
		settings.BaseURL = *baseURLFlag
	}
	if *verboseFlag {
		settings.Verbose = true
	}

	if err := tui.Run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
