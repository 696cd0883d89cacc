package hearing

import "time"

const (
	DefaultCategory = "General"
	UpcomingLimit   = 5
)

type Hearing struct {
	ID       int64     `json:"id"`
	Owner    string    `json:"owner_username"`
	CaseName string    `json:"case_name"`
	Category string    `json:"category"`
	Date     time.Time `json:"date"`
}
