package note

import (
	"fmt"

	"github.com/ribgsilva/audio-note-api/sys"
)

const maxTitleLen = 100

// validate checks the note fields and every upload against the configured
// policy before anything is persisted, aggregating all failures
func validate(title string, uploads []Upload) error {
	var failures []Failure

	if title == "" {
		failures = append(failures, Failure{Field: "title", Reason: "is required"})
	} else if len(title) > maxTitleLen {
		failures = append(failures, Failure{Field: "title", Reason: fmt.Sprintf("longer than %d characters", maxTitleLen)})
	}

	for _, up := range uploads {
		if up.Size > sys.Configs.Uploads.MaxBytes {
			failures = append(failures, Failure{
				Field:  up.Name,
				Reason: fmt.Sprintf("size %d exceeds the limit of %d bytes", up.Size, sys.Configs.Uploads.MaxBytes),
			})
		}
		if !allowedType(up.ContentType) {
			failures = append(failures, Failure{
				Field:  up.Name,
				Reason: fmt.Sprintf("media type %q is not allowed", up.ContentType),
			})
		}
	}

	if len(failures) > 0 {
		return &ValidationError{Failures: failures}
	}
	return nil
}

func allowedType(contentType string) bool {
	for _, t := range sys.Configs.Uploads.AllowedTypes {
		if t == contentType {
			return true
		}
	}
	return false
}
