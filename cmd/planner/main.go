package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/abu-pixel/kepler"
	"github.com/soniakeys/meeus/julian"
	"github.com/spf13/viper"
)

// This code effectively only reads the scenario file, computes the orbit
// figures and the Hohmann transfer, and writes the report files.

const (
	defaultScenario    = "~~unset~~"
	dateFormat         = "2006-01-02 15:04:05"
	dateFormatFilename = "2006-01-02-15.04.05"
)

var (
	scenario string
	verbose  bool
)

func init() {
	// Read flags
	flag.StringVar(&scenario, "scenario", defaultScenario, "planner scenario TOML file")
	flag.BoolVar(&verbose, "verbose", false, "really verbose (esp. for configuration)")
}

func main() {
	flag.Parse()
	// Load scenario
	if scenario == defaultScenario {
		log.Fatal("no scenario provided")
	}
	scenario = strings.Replace(scenario, ".toml", "", 1)
	viper.AddConfigPath(".")
	viper.SetConfigName(scenario)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("./%s.toml: Error %s", scenario, err)
	}

	// Read mission parameters
	bodyName := viper.GetString("mission.body")
	body, err := kepler.CelestialObjectFromString(bodyName)
	if err != nil {
		log.Fatalf("mission.body: %s", err)
	}
	departure := confReadJDEorTime("mission.departure")
	if verbose {
		log.Printf("[conf] %s departure %s\n", body, departure.Format(dateFormat))
	}

	// Read and validate orbit elements
	a := viper.GetFloat64("orbit.sma")
	e := viper.GetFloat64("orbit.ecc")
	i := viper.GetFloat64("orbit.inc")
	Ω := viper.GetFloat64("orbit.raan")
	ω := viper.GetFloat64("orbit.argp")
	if err := kepler.ValidateElements(body.GM(), a, e); err != nil {
		log.Fatalf("orbit: %s", err)
	}
	orbit := kepler.NewOrbit(a, e, i, Ω, ω, body)
	log.Printf("[orbit] %s period=%s mean motion=%.8f rad/s\n", orbit, orbit.Period(), orbit.MeanMotion())

	// Orbit path samples for plotting
	samples := viper.GetInt("orbit.samples")
	if samples == 0 {
		samples = 360
	}
	csvName := fmt.Sprintf("orbit-%s.csv", departure.Format(dateFormatFilename))
	f, err := os.Create(csvName)
	if err != nil {
		log.Fatalf("%s: %s", csvName, err)
	}
	if err := kepler.WriteOrbitCSV(orbit, samples, f); err != nil {
		log.Fatalf("%s: %s", csvName, err)
	}
	f.Close()
	if verbose {
		log.Printf("[orbit] wrote %d samples to %s\n", samples, csvName)
	}

	// Transfer
	rI := viper.GetFloat64("transfer.from")
	rF := viper.GetFloat64("transfer.to")
	if rI == 0 && rF == 0 {
		return // scenario without a maneuver
	}
	if err := kepler.ValidateRadii(body.GM(), rI, rF); err != nil {
		log.Fatalf("transfer: %s", err)
	}
	report := kepler.NewTransferReport(body, rI, rF, departure)
	if _, err := report.WriteFile(fmt.Sprintf("transfer-%s", departure.Format(dateFormatFilename))); err != nil {
		log.Fatalf("report: %s", err)
	}
	report.WriteText(os.Stdout)
}

// confReadJDEorTime reads the scenario key as a Julian date if a float is
// given, and as a formatted date otherwise.
func confReadJDEorTime(key string) (dt time.Time) {
	jde := viper.GetFloat64(key)
	if jde == 0 {
		var err error
		dt, err = time.Parse(dateFormat, viper.GetString(key))
		if err != nil {
			log.Fatalf("%s: %s", key, err)
		}
	} else {
		dt = julian.JDToTime(jde)
	}
	return
}
