package note

import "time"

const noteKey = "notes.%s"

type Note struct {
	Id          string
	Owner       string
	Title       string
	Description string
	UpdatedAt   time.Time
	CreatedAt   time.Time
}
