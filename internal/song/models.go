package song

import (
	"strings"
	"time"
)

const maxDurationSeconds = 7200

type Song struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Artist    string    `json:"artist"`
	Album     string    `json:"album"`
	Genre     string    `json:"genre"`
	Duration  int       `json:"duration"` // seconds
	Owner     string    `json:"owner"`
	CreatedAt time.Time `json:"createdAt"`
}

// Request carries the mutable attributes of a song. ID, owner and createdAt
// are never taken from the client.
type Request struct {
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Album    string `json:"album"`
	Genre    string `json:"genre"`
	Duration int    `json:"duration"`
}

func (req *Request) validate() string {
	req.Title = strings.TrimSpace(req.Title)
	req.Artist = strings.TrimSpace(req.Artist)
	req.Album = strings.TrimSpace(req.Album)
	req.Genre = strings.TrimSpace(req.Genre)

	switch {
	case req.Title == "":
		return "title is required"
	case len(req.Title) > 200:
		return "title is too long"
	case req.Artist == "":
		return "artist is required"
	case len(req.Artist) > 200:
		return "artist is too long"
	case req.Duration <= 0:
		return "duration must be positive"
	case req.Duration > maxDurationSeconds:
		return "duration must be at most 7200 seconds"
	}
	return ""
}

// Search fields. Title and artist match on a case-insensitive substring;
// genre is a case-insensitive exact match. The asymmetry is deliberate:
// genres are short labels, not free text.
const (
	FieldTitle  = "title"
	FieldArtist = "artist"
	FieldGenre  = "genre"
)

func (s Song) matches(field, query string) bool {
	q := strings.ToLower(query)
	switch field {
	case FieldTitle:
		return strings.Contains(strings.ToLower(s.Title), q)
	case FieldArtist:
		return strings.Contains(strings.ToLower(s.Artist), q)
	case FieldGenre:
		return strings.EqualFold(s.Genre, query)
	}
	return false
}
