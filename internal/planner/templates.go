package planner

import "strings"

// A slot is one fixed activity within a day template. Slot times are distinct
// and listed in ascending order, which keeps every generated day strictly
// time-sorted by construction. The fraction is the share of the daily budget
// this slot consumes; per-template fraction sums stay at or below 0.95 so a
// day never exceeds 1.1x its budget share.
type slot struct {
	timeOfDay   string
	title       string
	description string
	category    Category
	fraction    float64
	location    string
}

type dayTemplate struct {
	name  string
	tags  []string
	slots []slot
}

var arrivalTemplate = dayTemplate{
	name: "arrival",
	slots: []slot{
		{
			timeOfDay:   "09:00",
			title:       "Arrival Transfer & Check-in",
			description: "Transfer from the airport or station and settle into your accommodation in {destination}.",
			category:    CategoryTransportation,
			fraction:    0.10,
		},
		{
			timeOfDay:   "11:00",
			title:       "Orientation Walking Tour",
			description: "Get your bearings with a guided walk through the historic heart of {destination}.",
			category:    CategorySightseeing,
			fraction:    0.10,
			location:    "{destination} old town",
		},
		{
			timeOfDay:   "13:00",
			title:       "Local Cuisine Experience",
			description: "Enjoy authentic {destination} cuisine at a popular local restaurant.",
			category:    CategoryFood,
			fraction:    0.15,
		},
		{
			timeOfDay:   "16:00",
			title:       "Neighborhood Stroll",
			description: "Explore the streets around your accommodation at your own pace.",
			category:    CategoryLeisure,
			fraction:    0.05,
		},
		{
			timeOfDay:   "19:00",
			title:       "Welcome Dinner",
			description: "Savor a welcome dinner at a rooftop restaurant with views over {destination}.",
			category:    CategoryFood,
			fraction:    0.30,
		},
	},
}

var departureTemplate = dayTemplate{
	name: "departure",
	slots: []slot{
		{
			timeOfDay:   "08:30",
			title:       "Farewell Breakfast",
			description: "A relaxed breakfast before checking out.",
			category:    CategoryFood,
			fraction:    0.10,
		},
		{
			timeOfDay:   "10:00",
			title:       "Last-minute Shopping",
			description: "Pick up souvenirs and local crafts before you leave {destination}.",
			category:    CategoryShopping,
			fraction:    0.20,
		},
		{
			timeOfDay:   "12:30",
			title:       "Checkout & Departure Transfer",
			description: "Check out and transfer to the airport or station.",
			category:    CategoryTransportation,
			fraction:    0.15,
		},
	},
}

// singleDayTemplate collapses the arrival and departure sets into one day for
// trips where start and end date coincide.
var singleDayTemplate = dayTemplate{
	name: "single-day",
	slots: []slot{
		{
			timeOfDay:   "09:00",
			title:       "Arrival Transfer",
			description: "Transfer from the airport or station into {destination}.",
			category:    CategoryTransportation,
			fraction:    0.10,
		},
		{
			timeOfDay:   "10:30",
			title:       "{destination} Highlights Tour",
			description: "A compact guided tour covering the must-see sights of {destination}.",
			category:    CategorySightseeing,
			fraction:    0.15,
		},
		{
			timeOfDay:   "13:00",
			title:       "Local Cuisine Experience",
			description: "Enjoy authentic {destination} cuisine at a popular local restaurant.",
			category:    CategoryFood,
			fraction:    0.15,
		},
		{
			timeOfDay:   "15:00",
			title:       "Souvenir Shopping",
			description: "Browse local markets for souvenirs and crafts.",
			category:    CategoryShopping,
			fraction:    0.15,
		},
		{
			timeOfDay:   "18:00",
			title:       "Farewell Dinner",
			description: "A farewell dinner at a waterfront restaurant in {destination}.",
			category:    CategoryFood,
			fraction:    0.25,
		},
		{
			timeOfDay:   "20:30",
			title:       "Departure Transfer",
			description: "Transfer back to the airport or station.",
			category:    CategoryTransportation,
			fraction:    0.10,
		},
	},
}

var natureDayTemplate = dayTemplate{
	name: "nature",
	tags: []string{"nature", "outdoors", "hiking", "adventure"},
	slots: []slot{
		{
			timeOfDay:   "08:00",
			title:       "Early Breakfast",
			description: "Fuel up before a full day outdoors.",
			category:    CategoryFood,
			fraction:    0.10,
		},
		{
			timeOfDay:   "09:30",
			title:       "Full-day Excursion to {destination} National Park",
			description: "Experience the natural beauty around {destination} with a guided hike through scenic trails.",
			category:    CategoryNature,
			fraction:    0.40,
			location:    "{destination} National Park",
		},
		{
			timeOfDay:   "13:00",
			title:       "Trailside Picnic Lunch",
			description: "A packed lunch with local produce, enjoyed on the trail.",
			category:    CategoryFood,
			fraction:    0.10,
		},
		{
			timeOfDay:   "17:00",
			title:       "Hot Spring Soak",
			description: "Unwind after the hike with a soak at a nearby hot spring or spa.",
			category:    CategoryWellness,
			fraction:    0.05,
		},
		{
			timeOfDay:   "19:30",
			title:       "Dinner Experience",
			description: "Savor a delicious dinner at a waterfront restaurant with stunning views.",
			category:    CategoryFood,
			fraction:    0.25,
		},
	},
}

var cultureDayTemplate = dayTemplate{
	name: "culture",
	tags: []string{"history", "culture", "museums", "art", "heritage"},
	slots: []slot{
		{
			timeOfDay:   "09:00",
			title:       "Visit {destination} Museum",
			description: "Explore the rich cultural heritage and historical artifacts of the region.",
			category:    CategoryCulture,
			fraction:    0.15,
			location:    "{destination} Museum",
		},
		{
			timeOfDay:   "11:30",
			title:       "Historic Quarter Guided Tour",
			description: "Walk the oldest streets of {destination} with a local guide.",
			category:    CategorySightseeing,
			fraction:    0.10,
		},
		{
			timeOfDay:   "13:00",
			title:       "Local Cuisine Experience",
			description: "Enjoy authentic {destination} cuisine at a popular local restaurant.",
			category:    CategoryFood,
			fraction:    0.15,
		},
		{
			timeOfDay:   "14:30",
			title:       "Heritage Site Excursion",
			description: "An afternoon excursion to a landmark heritage site near {destination}.",
			category:    CategoryCulture,
			fraction:    0.25,
		},
		{
			timeOfDay:   "19:00",
			title:       "Dinner & Traditional Show",
			description: "Dinner accompanied by a traditional music and dance performance.",
			category:    CategoryEntertainment,
			fraction:    0.25,
		},
	},
}

var leisureDayTemplate = dayTemplate{
	name: "leisure",
	tags: []string{"shopping", "relax", "leisure", "wellness", "food"},
	slots: []slot{
		{
			timeOfDay:   "09:30",
			title:       "Cafe Breakfast",
			description: "A slow morning at a well-loved neighborhood cafe.",
			category:    CategoryFood,
			fraction:    0.10,
		},
		{
			timeOfDay:   "10:30",
			title:       "Shopping at Local Markets",
			description: "Discover unique souvenirs and local crafts at the famous markets of {destination}.",
			category:    CategoryShopping,
			fraction:    0.25,
		},
		{
			timeOfDay:   "13:00",
			title:       "Local Cuisine Experience",
			description: "Enjoy authentic {destination} cuisine at a popular local restaurant.",
			category:    CategoryFood,
			fraction:    0.15,
		},
		{
			timeOfDay:   "15:00",
			title:       "Spa & Wellness Afternoon",
			description: "Recharge with a massage or spa session.",
			category:    CategoryWellness,
			fraction:    0.15,
		},
		{
			timeOfDay:   "19:00",
			title:       "Dinner Experience",
			description: "Savor a delicious dinner at a rooftop restaurant with stunning views.",
			category:    CategoryFood,
			fraction:    0.25,
		},
	},
}

// middleArchetypes is the cyclic default for middle days when no interest
// matches; the order fixes which archetype lands on which day.
var middleArchetypes = []dayTemplate{
	natureDayTemplate,
	cultureDayTemplate,
	leisureDayTemplate,
}

// matchArchetypes returns the archetypes whose tag sets intersect the given
// interests, falling back to all archetypes when nothing matches. Matching is
// case-insensitive on trimmed tags.
func matchArchetypes(interests []string) []dayTemplate {
	if len(interests) == 0 {
		return middleArchetypes
	}

	want := make(map[string]bool, len(interests))
	for _, in := range interests {
		in = strings.ToLower(strings.TrimSpace(in))
		if in != "" {
			want[in] = true
		}
	}

	var matched []dayTemplate
	for _, tpl := range middleArchetypes {
		for _, tag := range tpl.tags {
			if want[tag] {
				matched = append(matched, tpl)
				break
			}
		}
	}

	if len(matched) == 0 {
		return middleArchetypes
	}
	return matched
}
