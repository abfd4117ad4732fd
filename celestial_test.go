package kepler

import (
	"strings"
	"testing"
)

func TestCelestialObjectFromString(t *testing.T) {
	for _, name := range []string{"Sun", "Venus", "Earth", "Mars", "Jupiter"} {
		body, err := CelestialObjectFromString(name)
		if err != nil {
			t.Fatalf("%s: %s", name, err)
		}
		if body.Name != name {
			t.Fatalf("got %s, expected %s", body.Name, name)
		}
		if body.GM() <= 0 {
			t.Fatalf("%s has a non-positive μ", name)
		}
		// Lookup is case insensitive.
		lower, err := CelestialObjectFromString(strings.ToLower(name))
		if err != nil || !lower.Equals(body) {
			t.Fatalf("case insensitive lookup failed for %s", name)
		}
	}
	if _, err := CelestialObjectFromString("Krypton"); err == nil {
		t.Fatal("expected an error for an undefined body")
	}
}

func TestCelestialEquals(t *testing.T) {
	if !Earth.Equals(Earth) {
		t.Fatal("Earth != Earth")
	}
	if Earth.Equals(Mars) {
		t.Fatal("Earth == Mars")
	}
	if Earth.String() != "Earth body" {
		t.Fatalf("String: %s", Earth.String())
	}
}
