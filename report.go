package kepler

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/soniakeys/meeus/julian"
)

const dateFormat = "2006-01-02 15:04:05"

// TransferReport renders a Hohmann transfer as a mission timeline. It is a
// consumer of the engine, not part of it: all values are derived from the
// TransferResult and the departure epoch.
type TransferReport struct {
	Body      CelestialObject
	RI, RF    float64 // km
	Departure time.Time
	Result    TransferResult
	logger    kitlog.Logger
}

// NewTransferReport computes the transfer and wraps it with its timeline.
func NewTransferReport(body CelestialObject, rI, rF float64, departure time.Time) TransferReport {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "report", fmt.Sprintf("%s %.0f->%.0f km", body.Name, rI, rF))
	return TransferReport{body, rI, rF, departure, Hohmann(rI, rF, body), klog}
}

// Arrival returns the epoch of the arrival burn.
func (r TransferReport) Arrival() time.Time {
	return r.Departure.Add(r.Result.TOF)
}

// DepartureJD returns the departure epoch as a Julian date.
func (r TransferReport) DepartureJD() float64 {
	return julian.TimeToJD(r.Departure)
}

// ArrivalJD returns the arrival epoch as a Julian date.
func (r TransferReport) ArrivalJD() float64 {
	return julian.TimeToJD(r.Arrival())
}

// WriteText writes the burn table and timeline to the provided writer.
func (r TransferReport) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, `# Hohmann transfer about %s
departure radius: %.3f km
arrival radius:   %.3f km
transfer sma:     %.3f km
burn 1: %.4f km/s at %s (UTC, JD %.5f)
burn 2: %.4f km/s at %s (UTC, JD %.5f)
total Δv: %.4f km/s
time of flight: %s
`, r.Body.Name, r.RI, r.RF, r.Result.ATransfer,
		r.Result.ΔvInit, r.Departure.UTC().Format(dateFormat), r.DepartureJD(),
		r.Result.ΔvFinal, r.Arrival().UTC().Format(dateFormat), r.ArrivalJD(),
		r.Result.ΔvTotal, r.Result.TOF)
	return err
}

// WriteFile writes the text report to the configured output directory and
// returns the file name.
func (r TransferReport) WriteFile(name string) (string, error) {
	fn := fmt.Sprintf("%s/%s.txt", kepConfig().outputDir, name)
	f, err := os.Create(fn)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := r.WriteText(f); err != nil {
		return "", err
	}
	r.logger.Log("file", fn, "Δv", fmt.Sprintf("%.4f", r.Result.ΔvTotal), "tof", r.Result.TOF)
	return fn, nil
}

// WriteOrbitCSV samples the orbit over one full revolution and writes a
// `M,x,y,r,v` record per sample. The samples feed external plotting, which
// is what renders the orbit path.
func WriteOrbitCSV(o Orbit, samples int, w io.Writer) error {
	if samples < 2 {
		return fmt.Errorf("need at least 2 samples, got %d", samples)
	}
	if _, err := fmt.Fprintf(w, "# %s\nM,x,y,r,v\n", o); err != nil {
		return err
	}
	step := 2 * math.Pi / float64(samples)
	for i := 0; i < samples; i++ {
		M := float64(i) * step
		pos := o.PositionAtMeanAnomaly(M)
		rNorm := pos.Norm()
		if _, err := fmt.Fprintf(w, "%f,%f,%f,%f,%f\n", M, pos.X, pos.Y, rNorm, o.VelocityAtRadius(rNorm)); err != nil {
			return err
		}
	}
	return nil
}
