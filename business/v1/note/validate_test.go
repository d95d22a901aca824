package note

import (
	"errors"
	"testing"

	"github.com/ribgsilva/audio-note-api/sys"
)

func TestValidate(t *testing.T) {
	sys.Configs.Uploads.MaxBytes = 10 * 1024 * 1024
	sys.Configs.Uploads.AllowedTypes = []string{"audio/mpeg", "audio/wav", "audio/aac"}

	cases := []struct {
		name     string
		title    string
		uploads  []Upload
		failures int
	}{
		{name: "no uploads", title: "a note", failures: 0},
		{name: "missing title", title: "", failures: 1},
		{name: "wav allowed", title: "a note", uploads: []Upload{{Name: "a.wav", ContentType: "audio/wav", Size: 1024}}, failures: 0},
		{name: "size at limit", title: "a note", uploads: []Upload{{Name: "a.wav", ContentType: "audio/wav", Size: 10 * 1024 * 1024}}, failures: 0},
		{name: "size over limit", title: "a note", uploads: []Upload{{Name: "a.wav", ContentType: "audio/wav", Size: 10*1024*1024 + 1}}, failures: 1},
		{name: "text plain rejected", title: "a note", uploads: []Upload{{Name: "a.txt", ContentType: "text/plain", Size: 10}}, failures: 1},
		{name: "all failures reported", title: "", uploads: []Upload{
			{Name: "a.txt", ContentType: "text/plain", Size: 10},
			{Name: "b.wav", ContentType: "audio/wav", Size: 11 * 1024 * 1024},
		}, failures: 3},
	}

	for _, c := range cases {
		err := validate(c.title, c.uploads)
		if c.failures == 0 {
			if err != nil {
				t.Fatalf("case %q: expected no error, got %v", c.name, err)
			}
			continue
		}

		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("case %q: expected a ValidationError, got %v", c.name, err)
		}
		if len(vErr.Failures) != c.failures {
			t.Fatalf("case %q: expected %d failures, got %v", c.name, c.failures, vErr.Failures)
		}
	}
}
