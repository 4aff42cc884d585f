package model

// Station is one playable internet-radio station from the remote catalog.
// Values are created once at startup and never mutated; identity is the ID.
type Station struct {
	ID        int    // catalog identifier, unique across the list
	Title     string // human-readable name; titles may repeat
	StreamURL string // locator handed to the playback engine
}

func (s Station) String() string {
	return s.Title
}
