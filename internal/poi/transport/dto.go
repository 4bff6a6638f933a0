package transport

// Category values accepted by the TripAdvisor content API.
const (
	CategoryHotels      = "hotels"
	CategoryAttractions = "attractions"
	CategoryRestaurants = "restaurants"
)

// SearchParams is the structured form extracted from a freeform POI query.
// Category, when set, is one of the Category* constants.
type SearchParams struct {
	SearchQuery string `json:"searchQuery"`
	Category    string `json:"category,omitempty"`
	LatLong     string `json:"latLong,omitempty"`
	Radius      *int   `json:"radius,omitempty"`
	RadiusUnit  string `json:"radiusUnit,omitempty"`
	Language    string `json:"language"`
}

// Location is a single result from location search endpoints.
type Location struct {
	LocationID string  `json:"location_id"`
	Name       string  `json:"name"`
	Distance   string  `json:"distance,omitempty"`
	Rating     string  `json:"rating,omitempty"`
	AddressObj Address `json:"address_obj"`
}

// Address is the nested address object of a location.
type Address struct {
	Street1       string `json:"street1,omitempty"`
	City          string `json:"city,omitempty"`
	Country       string `json:"country,omitempty"`
	AddressString string `json:"address_string,omitempty"`
}

// LocationDetails is the response of the location details endpoint.
type LocationDetails struct {
	LocationID  string  `json:"location_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	WebURL      string  `json:"web_url,omitempty"`
	Rating      string  `json:"rating,omitempty"`
	NumReviews  string  `json:"num_reviews,omitempty"`
	AddressObj  Address `json:"address_obj"`
}

// DetailsRequest is the query-string form of the location details endpoint.
type DetailsRequest struct {
	Language string `form:"language" validate:"omitempty,len=2,alpha"`
	Currency string `form:"currency" validate:"omitempty,len=3,alpha"`
}

// SearchRequest is the query-string form of the direct POI endpoint.
type SearchRequest struct {
	Query string `form:"q" validate:"required,min=2,max=200"`
}

// SearchResponse is the response of the direct POI endpoint.
type SearchResponse struct {
	Query   string       `json:"query"`
	Params  SearchParams `json:"params"`
	Results []Location   `json:"results"`
	Answer  string       `json:"answer"`
}
