package request_models

// GenerateItineraryRequest mirrors the public generation endpoint body.
// Budget is a pointer so a missing field can be told apart from an explicit
// zero budget, which is a valid request.
type GenerateItineraryRequest struct {
	Destination string   `json:"destination"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Budget      *float64 `json:"budget"`
	Tags        []string `json:"tags"`
	Save        bool     `json:"save"`
	Title       string   `json:"title"`
	Source      string   `json:"source"`
}
