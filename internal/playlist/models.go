package playlist

import (
	"strings"
	"time"
)

// Playlist references songs by ID only. The song service owns the songs;
// a reference may outlive the song it points at (see Composer).
type Playlist struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Owner       string    `json:"owner"`
	SongIDs     []string  `json:"songIds"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (p Playlist) hasSong(songID string) bool {
	for _, id := range p.SongIDs {
		if id == songID {
			return true
		}
	}
	return false
}

type Request struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (req *Request) validate() string {
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)

	switch {
	case req.Name == "":
		return "name is required"
	case len(req.Name) > 200:
		return "name must be between 1 and 200 characters"
	case len(req.Description) > 1000:
		return "description is too long"
	}
	return ""
}
