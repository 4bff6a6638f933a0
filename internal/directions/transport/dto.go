package transport

// DirectionsResult is the Google Directions response, trimmed to the fields
// the answer uses.
type DirectionsResult struct {
	Status string  `json:"status"`
	Routes []Route `json:"routes"`
}

// Route is a single route alternative.
type Route struct {
	Summary string `json:"summary"`
	Legs    []Leg  `json:"legs"`
}

// Leg is a route segment between two waypoints.
type Leg struct {
	Distance TextValue `json:"distance"`
	Duration TextValue `json:"duration"`
	Steps    []Step    `json:"steps"`
}

// Step is a single driving instruction.
type Step struct {
	HTMLInstructions string    `json:"html_instructions"`
	Distance         TextValue `json:"distance"`
}

// TextValue is the text/value pair Google uses for distances and durations.
type TextValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// Request is the query-string form of the direct directions endpoint.
// Either q or the origin/destination pair must be provided.
type Request struct {
	Query       string `form:"q"`
	Origin      string `form:"origin"`
	Destination string `form:"destination"`
}

// Response is the response of the direct directions endpoint.
type Response struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Answer      string `json:"answer"`
}
