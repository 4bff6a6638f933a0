package service

import (
	"testing"

	"tripbuddy_backend/internal/weather/transport"
)

func TestExtractLocationPreposition(t *testing.T) {
	got := ExtractLocation("What's the weather like in Reykjavik?")
	if got != "Reykjavik" {
		t.Fatalf("expected Reykjavik, got %q", got)
	}
}

func TestExtractLocationForecastFor(t *testing.T) {
	got := ExtractLocation("forecast for New York")
	if got != "New York" {
		t.Fatalf("expected New York, got %q", got)
	}
}

func TestExtractLocationStripsWeatherWords(t *testing.T) {
	got := ExtractLocation("Tokyo weather today")
	if got != "Tokyo" {
		t.Fatalf("expected Tokyo, got %q", got)
	}
}

func TestExtractLocationFallback(t *testing.T) {
	got := ExtractLocation("weather")
	if got != "weather" {
		t.Fatalf("expected the raw query back, got %q", got)
	}
}

func TestFormatAnswer(t *testing.T) {
	current := &transport.Current{
		Name:    "Lisbon",
		Weather: []transport.Condition{{Main: "Clear", Description: "clear sky"}},
		Main:    transport.Main{Temp: 24.3, FeelsLike: 25.1, Humidity: 48},
		Wind:    transport.Wind{Speed: 3.6},
	}

	got := FormatAnswer("lisbon", current)
	want := "Current weather in Lisbon: clear sky, 24.3°C (feels like 25.1°C), humidity 48%, wind 3.6 m/s."
	if got != want {
		t.Fatalf("unexpected answer:\n got %q\nwant %q", got, want)
	}
}
