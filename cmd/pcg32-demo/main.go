// Package main contains entry point logic of the pcg32 demo utility,
// which mimics the pcg32-demo program from the PCG reference
// distribution.
package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/sot-tech/pcg32/pkg/conf"
	l "github.com/sot-tech/pcg32/pkg/log"
)

const (
	logOutArg    = "logOut"
	logLevelArg  = "logLevel"
	logPrettyArg = "logPretty"
	logColorsArg = "logColored"
	configArg    = "config"
	roundsArg    = "rounds"
	entropyArg   = "entropy"
)

func main() {
	var err error

	logOut := flag.String(logOutArg, "stderr", "output for logging, might be 'stderr', 'stdout' or file path")
	logLevel := flag.String(logLevelArg, "warn", "logging level: trace, debug, info, warn, error, fatal, panic")
	logPretty := flag.Bool(logPrettyArg, false, "enable log pretty print. used only if 'logOut' set to 'stdout' or 'stderr'. if not set, log outputs json")
	logColored := flag.Bool(logColorsArg, runtime.GOOS == "windows", "enable log coloring. used only if set 'logPretty'")
	configPath := flag.String(configArg, "", "location of configuration file. if not set, demo runs with reference defaults")
	rounds := flag.Int(roundsArg, 0, "number of rounds to print, overrides configured value if positive")
	entropy := flag.Bool(entropyArg, false, "seed from system entropy instead of configured seeds")
	flag.Parse()

	if err = l.ConfigureLogger(*logOut, *logLevel, *logPretty, *logColored); err != nil {
		log.Fatal("unable to configure logger: ", err)
	}
	defer l.Close()

	cfg := DefaultConfig
	if len(*configPath) > 0 {
		if cfg, err = ParseConfigFile(*configPath); err != nil {
			log.Fatal("unable to read config file: ", err)
		}
	}
	if *rounds > 0 {
		cfg.Rounds = *rounds
	}
	if *entropy {
		cfg.Generator = conf.MapConfig{"entropy": true}
	}

	g, err := cfg.NewGenerator()
	if err != nil {
		log.Fatal("unable to construct generator: ", err)
	}
	if err = Demo(os.Stdout, &g, cfg.Rounds); err != nil {
		log.Fatal("unable to write demo report: ", err)
	}
}
