package transport

// Current is the OpenWeatherMap current-weather response, trimmed to the
// fields the answer uses.
type Current struct {
	Name    string      `json:"name"`
	Weather []Condition `json:"weather"`
	Main    Main        `json:"main"`
	Wind    Wind        `json:"wind"`
}

// Condition is a single weather condition entry.
type Condition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

// Main carries temperature and humidity readings.
type Main struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  int     `json:"humidity"`
}

// Wind carries wind readings.
type Wind struct {
	Speed float64 `json:"speed"`
}

// Request is the query-string form of the direct weather endpoint.
type Request struct {
	Location string `form:"location" validate:"required,min=2,max=100"`
}

// Response is the response of the direct weather endpoint.
type Response struct {
	Location string  `json:"location"`
	Current  Current `json:"current"`
	Answer   string  `json:"answer"`
}
