package models

type Category struct {
	ID          int    `json:"category_id"`
	Name        string `json:"category_name"`
	Description string `json:"description,omitempty"`
}
