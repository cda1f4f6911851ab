package pricing

import (
	"encoding/json"
	"strings"
)

// Input is the artist questionnaire as submitted over the wire. Field names
// match the form payload; numeric entries arrive as JSON numbers.
type Input struct {
	Medium    string      `json:"medium"`
	Width     json.Number `json:"w"`
	Height    json.Number `json:"h"`
	Unit      string      `json:"unit"` // "in" | "cm"
	Year      json.Number `json:"year,omitempty"`
	Career    string      `json:"career"` // "student" | "emerging" | "mid" | "established"
	Shows     json.Number `json:"shows,omitempty"`
	Solo      json.Number `json:"solo,omitempty"`
	Market    string      `json:"market"`
	Followers string      `json:"followers"` // bracket id, e.g. "t10k"
	Sales     string      `json:"sales"`     // bracket id, e.g. "5-15"
	Site      bool        `json:"site,omitempty"`
}

// Validate checks the required fields: medium, width, height, career stage,
// market, social-following bracket and sales bracket. Any missing or zero
// value yields one bulk ErrInvalidInput; no per-field detail is surfaced.
// Optional fields (year, show counts, site flag) are never validated.
func (in Input) Validate() error {
	switch {
	case strings.TrimSpace(in.Medium) == "",
		!positive(in.Width),
		!positive(in.Height),
		strings.TrimSpace(in.Career) == "",
		strings.TrimSpace(in.Market) == "",
		strings.TrimSpace(in.Followers) == "",
		strings.TrimSpace(in.Sales) == "":
		return ErrInvalidInput
	}
	return nil
}

// positive reports whether n holds a non-zero number. An absent field decodes
// to the empty json.Number, which fails to parse and counts as missing; an
// explicit zero is rejected the same way.
func positive(n json.Number) bool {
	f, err := n.Float64()
	return err == nil && f != 0
}
