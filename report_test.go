package kepler

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/gonum/floats"
)

func TestTransferReportTimeline(t *testing.T) {
	departure := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	report := NewTransferReport(Earth, 6771, 42164, departure)
	if got := report.Arrival().Sub(departure); got != report.Result.TOF {
		t.Fatalf("arrival - departure = %s != tof %s", got, report.Result.TOF)
	}
	// Julian dates must be a day count apart equal to the time of flight.
	days := report.ArrivalJD() - report.DepartureJD()
	if !floats.EqualWithinAbs(days*86400, report.Result.TOFSeconds(), 1e-3) {
		t.Fatalf("JD delta of %f days does not match the tof", days)
	}
}

func TestTransferReportText(t *testing.T) {
	departure := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	report := NewTransferReport(Earth, 6771, 42164, departure)
	var buf bytes.Buffer
	if err := report.WriteText(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Earth", "burn 1", "burn 2", "total Δv", "2026-08-25 12:00:00"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report is missing %q:\n%s", want, out)
		}
	}
}

func TestWriteOrbitCSV(t *testing.T) {
	o := NewOrbit(26600, 0.72, 63.4, 0, 270, Earth)
	var buf bytes.Buffer
	if err := WriteOrbitCSV(o, 90, &buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// One comment line, one header, 90 samples.
	if len(lines) != 92 {
		t.Fatalf("got %d lines, expected 92", len(lines))
	}
	if lines[1] != "M,x,y,r,v" {
		t.Fatalf("header: %s", lines[1])
	}
	for _, line := range lines[2:] {
		if strings.Count(line, ",") != 4 {
			t.Fatalf("malformed record: %s", line)
		}
	}
	if err := WriteOrbitCSV(o, 1, &buf); err == nil {
		t.Fatal("expected an error for a single sample")
	}
}
