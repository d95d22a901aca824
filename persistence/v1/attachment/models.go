package attachment

import "time"

type Attachment struct {
	Id          string
	NoteId      string
	BlobKey     string
	ContentType string
	SizeBytes   int64
	UploadedAt  time.Time
}
