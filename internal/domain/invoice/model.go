package invoice

import "time"

type Invoice struct {
	ID         int64     `json:"id"`
	Owner      string    `json:"owner_username"`
	ClientName string    `json:"client_name"`
	Amount     float64   `json:"amount"`
	Date       time.Time `json:"date"`
}
