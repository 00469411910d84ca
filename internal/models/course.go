package models

// Course represents a catalog entry with its section roster.
type Course struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Section      string   `json:"section"`
	SeatCapacity int      `json:"seat_capacity"`
	Roster       []string `json:"roster"`
}

// Enrolled reports whether the username holds a roster seat.
func (c *Course) Enrolled(username string) bool {
	for _, u := range c.Roster {
		if u == username {
			return true
		}
	}
	return false
}

// Full reports whether the section has no seats left.
func (c *Course) Full() bool {
	return len(c.Roster) >= c.SeatCapacity
}
