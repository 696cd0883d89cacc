package draft

import "time"

type Draft struct {
	ID       int64     `json:"id"`
	Owner    string    `json:"owner_username"`
	Category Category  `json:"category"`
	DocType  string    `json:"doc_type"`
	Content  string    `json:"content"`
	Date     time.Time `json:"date"`
}
