package agent

import (
	"context"
	"fmt"

	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"
)

// Adapter produces a text answer for a freeform query.
type Adapter interface {
	Answer(ctx context.Context, query string) (string, error)
}

// ToolDependencies are the branch adapters the tools call into. Nil entries
// are skipped during tool construction.
type ToolDependencies struct {
	POI       Adapter
	Weather   Adapter
	Route     Adapter
	Knowledge Adapter
	Flights   Adapter
}

// QueryInput is the argument every adapter tool takes.
type QueryInput struct {
	Query string `json:"query" description:"The traveler's request, phrased as free text"`
}

// QueryOutput is the result every adapter tool returns.
type QueryOutput struct {
	Answer string `json:"answer"`
}

// buildTools wraps the configured adapters as function tools.
func buildTools(deps *ToolDependencies) ([]tool.Tool, error) {
	specs := []struct {
		name        string
		description string
		adapter     Adapter
	}{
		{
			name:        "SearchPlaces",
			description: "Finds hotels, attractions and restaurants for a destination. Use for any question about places to stay, visit or eat.",
			adapter:     deps.POI,
		},
		{
			name:        "GetWeather",
			description: "Returns current weather conditions for a location. Use for any question about weather, temperature or forecasts.",
			adapter:     deps.Weather,
		},
		{
			name:        "GetDirections",
			description: "Returns step-by-step driving directions between two places. Use for route and navigation questions.",
			adapter:     deps.Route,
		},
		{
			name:        "SearchTravelKnowledge",
			description: "Searches the travel knowledge base for visas, customs, packing and other general travel questions. Use when no other tool fits.",
			adapter:     deps.Knowledge,
		},
		{
			name:        "SearchFlights",
			description: "Searches flight offers between airports on a date. Use for flight, fare and airline questions.",
			adapter:     deps.Flights,
		},
	}

	var tools []tool.Tool
	for _, spec := range specs {
		if spec.adapter == nil {
			continue
		}
		t, err := newAdapterTool(spec.name, spec.description, spec.adapter)
		if err != nil {
			return nil, fmt.Errorf("create tool %s: %w", spec.name, err)
		}
		tools = append(tools, t)
	}
	return tools, nil
}

func newAdapterTool(name, description string, adapter Adapter) (tool.Tool, error) {
	return functiontool.New(functiontool.Config{
		Name:        name,
		Description: description,
	}, func(ctx tool.Context, input QueryInput) (QueryOutput, error) {
		answer, err := adapter.Answer(ctx, input.Query)
		if err != nil {
			// The model sees the failure as tool output and can recover or
			// apologize instead of aborting the run.
			return QueryOutput{Answer: fmt.Sprintf("tool failed: %v", err)}, nil
		}
		return QueryOutput{Answer: answer}, nil
	})
}
