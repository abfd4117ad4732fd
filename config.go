package kepler

import (
	"os"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	config    = _kepconfig{}
)

// _kepconfig is a "hidden" struct, just use `kepConfig`
type _kepconfig struct {
	solverTol   float64
	solverIters int
	outputDir   string
}

// kepConfig returns the engine configuration. The configuration file is
// optional: when the `KEPLER_CONFIG` environment variable is unset, or
// no conf.toml is found there, the defaults apply.
func kepConfig() _kepconfig {
	if cfgLoaded {
		return config
	}
	cfg := _kepconfig{solverTol: solverTolerance, solverIters: solverMaxIters, outputDir: "."}
	if confPath := os.Getenv("KEPLER_CONFIG"); confPath != "" {
		viper.SetConfigName("conf")
		viper.AddConfigPath(confPath)
		if err := viper.ReadInConfig(); err == nil {
			if tol := viper.GetFloat64("solver.tolerance"); tol > 0 {
				cfg.solverTol = tol
			}
			if iters := viper.GetInt("solver.iterations"); iters > 0 {
				cfg.solverIters = iters
			}
			if out := viper.GetString("general.output_path"); out != "" {
				cfg.outputDir = out
			}
		}
	}
	config = cfg
	cfgLoaded = true
	return config
}
