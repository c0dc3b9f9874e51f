package model

import "time"

// Budget represents a service quote request submitted via the public form.
// Company is the only optional field; it is stored as an empty string when
// the submitter leaves it out.
type Budget struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Service   string    `json:"service"`
	Details   string    `json:"details"`
	Company   string    `json:"company"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
}
