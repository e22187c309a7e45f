package request_models

type CreateTripRequest struct {
	Title       string   `json:"title" binding:"required"`
	Source      string   `json:"source"`
	Destination string   `json:"destination" binding:"required"`
	StartDate   string   `json:"start_date" binding:"required"`
	EndDate     string   `json:"end_date" binding:"required"`
	Budget      float64  `json:"budget"`
	IsPublic    bool     `json:"is_public"`
	Tags        []string `json:"tags"`
}

type UpdateTripRequest struct {
	Title    *string  `json:"title"`
	Status   *string  `json:"status"`
	IsPublic *bool    `json:"is_public"`
	Tags     []string `json:"tags"`
}
