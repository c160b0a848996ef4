package models

type Venue struct {
	ID       int    `json:"venue_id"`
	Name     string `json:"venue_name"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city"`
	Capacity int    `json:"capacity,omitempty"`
	Phone    string `json:"phone,omitempty"`
}
