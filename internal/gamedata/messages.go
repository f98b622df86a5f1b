package gamedata

import (
	"errors"
	"strings"
)

// Template is a message with {name} placeholders.
type Template string

// Format substitutes placeholders from alternating name, value pairs.
// Unknown placeholders are left as is.
func (t Template) Format(pairs ...string) string {
	if len(pairs) < 2 {
		return string(t)
	}
	oldnew := make([]string, 0, len(pairs))
	for i := 0; i+1 < len(pairs); i += 2 {
		oldnew = append(oldnew, "{"+pairs[i]+"}", pairs[i+1])
	}
	return strings.NewReplacer(oldnew...).Replace(string(t))
}

// Messages is the narrative catalog loaded from messages.json.
type Messages struct {
	NewMap    Template `json:"newMap"`
	Boundary  Template `json:"boundary"`
	Terrain   Template `json:"terrain"` // {detail}
	Water     Template `json:"water"`
	Rock      Template `json:"rock"`
	Encounter Template `json:"encounter"`
	Slain     Template `json:"slain"`
	Struck    Template `json:"struck"` // {damage}
	Defeat    Template `json:"defeat"`
	Stalemate Template `json:"stalemate"`
	Moved     Template `json:"moved"` // {pos}
	Victory   Template `json:"victory"`
}

// Validate rejects a catalog with missing entries.
func (m *Messages) Validate() error {
	for _, t := range []Template{
		m.NewMap, m.Boundary, m.Terrain, m.Water, m.Rock, m.Encounter,
		m.Slain, m.Struck, m.Defeat, m.Stalemate, m.Moved, m.Victory,
	} {
		if t == "" {
			return errors.New("message catalog has empty entries")
		}
	}
	return nil
}

// LoadMessages loads the message catalog from the embedded messages.json.
func LoadMessages() (Messages, error) {
	return Load[Messages]("messages.json")
}

// MustLoadMessages loads the message catalog, panicking on error.
func MustLoadMessages() Messages {
	return MustLoad[Messages]("messages.json")
}
