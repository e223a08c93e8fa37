package entity

// Genre is a musical genre reference row, attached to activities and to
// user profiles as a favorite.
type Genre struct {
	ID   uint64
	Name string
}

// EventType classifies an activity, e.g. "concert" or "club night".
type EventType struct {
	ID   uint64
	Name string
}

// PriceCategory is a coarse price bracket for an activity.
type PriceCategory struct {
	ID   uint64
	Name string
}

// Mood is a reference row a profile can point at ("mood for tonight").
type Mood struct {
	ID   uint64
	Name string
}
