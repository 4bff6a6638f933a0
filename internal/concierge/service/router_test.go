package service

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestRouter(t *testing.T, flightsEnabled bool) *Router {
	t.Helper()
	r, err := NewRouter("", flightsEnabled)
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	return r
}

func TestClassifyPriorityOrder(t *testing.T) {
	r := newTestRouter(t, true)

	// Flights outranks weather even when both vocabularies appear.
	if got := r.Classify("any flights to escape this weather?"); got != BranchFlights {
		t.Fatalf("expected flights, got %s", got)
	}
	if got := r.Classify("what's the weather in Oslo"); got != BranchWeather {
		t.Fatalf("expected weather, got %s", got)
	}
	if got := r.Classify("driving directions downtown"); got != BranchRoute {
		t.Fatalf("expected route, got %s", got)
	}
	if got := r.Classify("top attractions in Lisbon"); got != BranchPOI {
		t.Fatalf("expected poi, got %s", got)
	}
	if got := r.Classify("do I need a visa for Japan"); got != BranchKnowledge {
		t.Fatalf("expected knowledge, got %s", got)
	}
}

func TestClassifyFlightsDisabled(t *testing.T) {
	r := newTestRouter(t, false)

	if got := r.Classify("cheap flights to Rome"); got == BranchFlights {
		t.Fatal("flights branch should be unreachable when disabled")
	}
}

func TestClassifyEndpointPairIsRoute(t *testing.T) {
	r := newTestRouter(t, true)

	if got := r.Classify("how do I get from Utrecht to Ghent"); got != BranchRoute {
		t.Fatalf("expected route, got %s", got)
	}
	if got := r.Classify("distance between Porto and Faro"); got != BranchRoute {
		t.Fatalf("expected route, got %s", got)
	}
}

func TestClassifyWordBoundaries(t *testing.T) {
	r := newTestRouter(t, true)

	// "rain" must not fire inside "train".
	if got := r.Classify("train schedule advice"); got == BranchWeather {
		t.Fatal("expected no weather match on substring")
	}
}

func TestClassifyRulesFileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	rules := "weather:\n  - klimaat\n"
	if err := os.WriteFile(path, []byte(rules), 0o600); err != nil {
		t.Fatalf("write rules: %v", err)
	}

	r, err := NewRouter(path, true)
	if err != nil {
		t.Fatalf("new router: %v", err)
	}

	if got := r.Classify("hoe is het klimaat in Aruba"); got != BranchWeather {
		t.Fatalf("expected weather via override, got %s", got)
	}
	// Untouched sets keep their defaults.
	if got := r.Classify("cheap flights to Rome"); got != BranchFlights {
		t.Fatalf("expected flights via defaults, got %s", got)
	}
}

func TestBranchFromDatasource(t *testing.T) {
	if got := branchFromDatasource("Route"); got != BranchRoute {
		t.Fatalf("expected route, got %s", got)
	}
	if got := branchFromDatasource("something else"); got != BranchKnowledge {
		t.Fatalf("expected knowledge fallback, got %s", got)
	}
}

func TestBranchFromText(t *testing.T) {
	if got := branchFromText("I think the poi datasource fits best"); got != BranchPOI {
		t.Fatalf("expected poi, got %s", got)
	}
	if got := branchFromText("no idea"); got != BranchKnowledge {
		t.Fatalf("expected knowledge, got %s", got)
	}
}
