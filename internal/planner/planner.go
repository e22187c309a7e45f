// Package planner generates day-by-day trip itineraries. It is a pure
// computation: no database, no network, no ambient randomness, so two calls
// with the same request always produce the same schedule.
package planner

import (
	"math"
	"strings"
	"time"

	"tripbuddy/pkg/utils"
)

const DateLayout = "2006-01-02"

type Category string

const (
	CategoryFood           Category = "food"
	CategorySightseeing    Category = "sightseeing"
	CategoryTransportation Category = "transportation"
	CategoryAccommodation  Category = "accommodation"
	CategoryEntertainment  Category = "entertainment"
	CategoryShopping       Category = "shopping"
	CategoryNature         Category = "nature"
	CategoryCulture        Category = "culture"
	CategoryLeisure        Category = "leisure"
	CategoryWellness       Category = "wellness"
	CategoryOther          Category = "other"
)

type TripRequest struct {
	Destination string   `json:"destination"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Budget      float64  `json:"budget"`
	Interests   []string `json:"interests"`
}

type Activity struct {
	Time        string   `json:"time"` // "15:04", local time of day
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Cost        float64  `json:"cost"`
	Location    string   `json:"location,omitempty"`
}

type DayPlan struct {
	DayNumber  int        `json:"day_number"`
	Date       string     `json:"date"`
	Activities []Activity `json:"activities"`
}

// InvalidInputError reports a precondition violation in the trip request.
// It matches utils.ErrInvalidInput under errors.Is so the HTTP layer can map
// it without knowing the reason.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

func (e *InvalidInputError) Is(target error) bool {
	return target == utils.ErrInvalidInput
}

// Generate produces one DayPlan per calendar day between StartDate and
// EndDate inclusive. The budget is split evenly across days; each day's
// activities come from a fixed template chosen by day position, with middle
// days biased toward the caller's interests. Output is all-or-nothing: any
// precondition failure returns a nil slice and an *InvalidInputError.
func Generate(req TripRequest) ([]DayPlan, error) {
	if strings.TrimSpace(req.Destination) == "" {
		return nil, &InvalidInputError{Reason: "destination required"}
	}

	start, err := time.ParseInLocation(DateLayout, req.StartDate, time.UTC)
	if err != nil {
		return nil, &InvalidInputError{Reason: "invalid date range"}
	}
	end, err := time.ParseInLocation(DateLayout, req.EndDate, time.UTC)
	if err != nil {
		return nil, &InvalidInputError{Reason: "invalid date range"}
	}
	if end.Before(start) {
		return nil, &InvalidInputError{Reason: "invalid date range"}
	}

	if req.Budget < 0 {
		return nil, &InvalidInputError{Reason: "budget must be non-negative"}
	}

	dayCount := int(end.Sub(start).Hours()/24) + 1
	dailyBudget := req.Budget / float64(dayCount)

	dest := strings.TrimSpace(req.Destination)
	matched := matchArchetypes(req.Interests)

	days := make([]DayPlan, 0, dayCount)
	for i := 0; i < dayCount; i++ {
		tpl := templateForDay(i, dayCount, matched)

		activities := make([]Activity, 0, len(tpl.slots))
		for _, s := range tpl.slots {
			activities = append(activities, Activity{
				Time:        s.timeOfDay,
				Title:       expand(s.title, dest),
				Description: expand(s.description, dest),
				Category:    s.category,
				Cost:        math.Round(dailyBudget * s.fraction),
				Location:    expand(s.location, dest),
			})
		}

		days = append(days, DayPlan{
			DayNumber:  i + 1,
			Date:       start.AddDate(0, 0, i).Format(DateLayout),
			Activities: activities,
		})
	}

	return days, nil
}

// templateForDay picks the day template by position: arrival first, departure
// last, a collapsed template for single-day trips, and interest-biased
// archetypes cycled across the middle days.
func templateForDay(i, dayCount int, matched []dayTemplate) dayTemplate {
	switch {
	case dayCount == 1:
		return singleDayTemplate
	case i == 0:
		return arrivalTemplate
	case i == dayCount-1:
		return departureTemplate
	default:
		middleIdx := i - 1
		return matched[middleIdx%len(matched)]
	}
}

func expand(s, destination string) string {
	return strings.ReplaceAll(s, "{destination}", destination)
}
