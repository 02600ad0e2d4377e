// Command corvid is a UCI chess engine: negamax alpha-beta search with
// iterative deepening, a transposition table, selective pruning, and
// quiescence search, driven over the UCI protocol from stdin/stdout.
package main

import (
	"flag"
	"fmt"

	"github.com/pkg/profile"

	"corvid/internal/config"
	"corvid/internal/uci"
)

var version = "dev"

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.Int("loglvl", 4, "standard log level (0=critical .. 5=debug)")
	showVersion := flag.Bool("version", false, "print version and exit")
	cpuProfile := flag.Bool("profile", false, "enable CPU profiling for this run")
	flag.Parse()

	if *showVersion {
		fmt.Println("corvid", version)
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.LogLevel = *logLvl
	config.Setup()

	uci.NewHandler().Loop()
}
