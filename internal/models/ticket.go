package models

import (
	"bytes"
	"fmt"
	"strconv"
)

// Price tolerates both JSON numbers and quoted decimal strings; some upstream
// snapshots serialize SQL decimals as "50.00".
type Price float64

func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*p = 0
		return nil
	}
	if data[0] == '"' {
		unquoted, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("invalid price string %s: %w", data, err)
		}
		if unquoted == "" {
			*p = 0
			return nil
		}
		v, err := strconv.ParseFloat(unquoted, 64)
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", unquoted, err)
		}
		*p = Price(v)
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid price %s: %w", data, err)
	}
	*p = Price(v)
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(p), 'f', -1, 64)), nil
}

type Ticket struct {
	ID                int    `json:"ticket_id"`
	EventID           int    `json:"event_id,omitempty"`
	Type              string `json:"ticket_type"`
	Price             Price  `json:"price"`
	QuantityAvailable int    `json:"quantity_available"`
}

// MinTicketPrice is the smallest numeric price among tickets, or 0 for an
// empty list.
func MinTicketPrice(tickets []Ticket) float64 {
	if len(tickets) == 0 {
		return 0
	}
	min := float64(tickets[0].Price)
	for _, t := range tickets[1:] {
		if float64(t.Price) < min {
			min = float64(t.Price)
		}
	}
	return min
}
