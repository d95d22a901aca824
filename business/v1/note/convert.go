package note

import (
	"fmt"
	"sort"

	"github.com/ribgsilva/audio-note-api/persistence/v1/attachment"
	"github.com/ribgsilva/audio-note-api/persistence/v1/note"
)

func toNote(n note.Note, atts []attachment.Attachment) Note {
	out := Note{
		Id:          n.Id,
		Owner:       n.Owner,
		Title:       n.Title,
		Description: n.Description,
		Attachments: make([]Attachment, 0, len(atts)),
		UpdatedAt:   n.UpdatedAt,
		CreatedAt:   n.CreatedAt,
	}

	sort.Slice(atts, func(i, j int) bool {
		if !atts[i].UploadedAt.Equal(atts[j].UploadedAt) {
			return atts[i].UploadedAt.Before(atts[j].UploadedAt)
		}
		return atts[i].Id < atts[j].Id
	})
	for _, a := range atts {
		out.Attachments = append(out.Attachments, toAttachment(a))
	}
	return out
}

func toAttachment(a attachment.Attachment) Attachment {
	return Attachment{
		Id:          a.Id,
		ContentType: a.ContentType,
		SizeBytes:   a.SizeBytes,
		Url:         fmt.Sprintf("/v1/notes/%s/audio/%s", a.NoteId, a.Id),
		UploadedAt:  a.UploadedAt,
	}
}

func keysOf(atts []attachment.Attachment) []string {
	keys := make([]string, 0, len(atts))
	for _, a := range atts {
		keys = append(keys, a.BlobKey)
	}
	return keys
}
