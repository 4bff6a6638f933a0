package service

import (
	"testing"

	"tripbuddy_backend/internal/directions/transport"
)

func TestExtractEndpointsFromTo(t *testing.T) {
	origin, destination, ok := ExtractEndpoints("How do I drive from Amsterdam to Paris?")
	if !ok {
		t.Fatal("expected endpoints to parse")
	}
	if origin != "Amsterdam" || destination != "Paris" {
		t.Fatalf("got %q -> %q", origin, destination)
	}
}

func TestExtractEndpointsBetween(t *testing.T) {
	origin, destination, ok := ExtractEndpoints("route between Berlin and Prague")
	if !ok {
		t.Fatal("expected endpoints to parse")
	}
	if origin != "Berlin" || destination != "Prague" {
		t.Fatalf("got %q -> %q", origin, destination)
	}
}

func TestExtractEndpointsBareTo(t *testing.T) {
	origin, destination, ok := ExtractEndpoints("directions Madrid to Seville")
	if !ok {
		t.Fatal("expected endpoints to parse")
	}
	if origin != "Madrid" || destination != "Seville" {
		t.Fatalf("got %q -> %q", origin, destination)
	}
}

func TestExtractEndpointsNoMatch(t *testing.T) {
	if _, _, ok := ExtractEndpoints("directions please"); ok {
		t.Fatal("expected no endpoints")
	}
}

func TestFormatAnswerStripsHTML(t *testing.T) {
	result := &transport.DirectionsResult{
		Status: "OK",
		Routes: []transport.Route{{
			Legs: []transport.Leg{{
				Steps: []transport.Step{
					{HTMLInstructions: "Head <b>north</b> on Main St", Distance: transport.TextValue{Text: "0.2 km"}},
					{HTMLInstructions: "Turn <b>left</b> onto A10", Distance: transport.TextValue{Text: "5.1 km"}},
				},
			}},
		}},
	}

	got := FormatAnswer(result)
	want := "Head north on Main St for 0.2 km\nTurn left onto A10 for 5.1 km"
	if got != want {
		t.Fatalf("unexpected answer:\n got %q\nwant %q", got, want)
	}
}

func TestFormatAnswerEmpty(t *testing.T) {
	if got := FormatAnswer(&transport.DirectionsResult{Status: "ZERO_RESULTS"}); got != "No route found." {
		t.Fatalf("unexpected answer %q", got)
	}
}
