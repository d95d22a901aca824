package note

import "time"

type Note struct {
	Id          string       `json:"id" example:"6f1c6d2c-94f8-4b36-a9a1-0d0a6fbb1c7a"`
	Owner       string       `json:"owner" example:"0b54f26c-21c8-4b9a-bb7a-4b6f3a4cdd9e"`
	Title       string       `json:"title" example:"my note"`
	Description string       `json:"description" example:"my note text"`
	Attachments []Attachment `json:"attachments"`
	UpdatedAt   time.Time    `json:"updatedAt" example:"2006-01-02T15:04:05Z"`
	CreatedAt   time.Time    `json:"createdAt" example:"2006-01-02T15:04:05Z"`
}

type Attachment struct {
	Id          string    `json:"id" example:"9c41f2ae-33c1-40a7-91c3-7b6ff03bda40"`
	ContentType string    `json:"contentType" example:"audio/wav"`
	SizeBytes   int64     `json:"sizeBytes" example:"3145728"`
	Url         string    `json:"url" example:"/v1/notes/{noteId}/audio/{audioId}"`
	UploadedAt  time.Time `json:"uploadedAt" example:"2006-01-02T15:04:05Z"`
}

// Upload is one candidate audio file: the declared name, media type and size
// plus the raw bytes
type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

type NewNote struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Uploads     []Upload
}

type UpdateNote struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Uploads     []Upload
}

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// OrphanBlobs lists blob keys whose delete failed and is owed to the sweeper
type OrphanBlobs struct {
	Keys []string `json:"keys"`
}
