package transport

// OffersResult is the Amadeus flight-offers search response, trimmed to the
// fields the answer uses.
type OffersResult struct {
	Data []Offer `json:"data"`
}

// Offer is a single flight offer.
type Offer struct {
	ID          string      `json:"id"`
	Price       Price       `json:"price"`
	Itineraries []Itinerary `json:"itineraries"`
}

// Price is the total offer price.
type Price struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

// Itinerary is one direction of an offer.
type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

// Segment is a single flight leg.
type Segment struct {
	Departure   Endpoint `json:"departure"`
	Arrival     Endpoint `json:"arrival"`
	CarrierCode string   `json:"carrierCode"`
	Number      string   `json:"number"`
}

// Endpoint is an airport plus timestamp.
type Endpoint struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

// SearchParams are the flight-offers search parameters.
type SearchParams struct {
	Origin        string
	Destination   string
	DepartureDate string
	Adults        int
	Max           int
}

// Request is the query-string form of the direct flights endpoint.
type Request struct {
	Origin        string `form:"origin" validate:"required,len=3,alpha"`
	Destination   string `form:"destination" validate:"required,len=3,alpha"`
	DepartureDate string `form:"departureDate" validate:"required,datetime=2006-01-02"`
	Adults        int    `form:"adults" validate:"omitempty,min=1,max=9"`
}

// Response is the response of the direct flights endpoint.
type Response struct {
	Offers []Offer `json:"offers"`
	Answer string  `json:"answer"`
}
