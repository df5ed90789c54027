package domain

import (
	"encoding/json"
	"regexp"
	"unicode/utf8"
)

// Participant is a person enrolled in exactly one workshop.
type Participant struct {
	ID       string  `json:"id"`
	Nombre   string  `json:"nombre"`
	Email    string  `json:"email"`
	Telefono *string `json:"telefono,omitempty"`
	TallerID string  `json:"tallerId"`
}

type ParticipantPatch struct {
	Nombre   Field[string]
	Email    Field[string]
	Telefono Field[*string]
	TallerID Field[string]
}

func (p *ParticipantPatch) UnmarshalJSON(data []byte) error {
	return decodeFields(data, map[string]json.Unmarshaler{
		"nombre":   &p.Nombre,
		"email":    &p.Email,
		"telefono": &p.Telefono,
		"tallerId": &p.TallerID,
	})
}

// Apply overlays the present fields on base.
func (p ParticipantPatch) Apply(base Participant) ParticipantCandidate {
	c := ParticipantCandidate{Participant: base, malformed: fieldSet{}}
	overlay(p.Nombre, &c.Nombre, "nombre", c.malformed)
	overlay(p.Email, &c.Email, "email", c.malformed)
	overlay(p.Telefono, &c.Telefono, "telefono", c.malformed)
	overlay(p.TallerID, &c.TallerID, "tallerId", c.malformed)
	return c
}

// ParticipantCandidate is the proposed state of a participant before it is
// stored. Only the store-independent rules live here; uniqueness and the
// workshop reference are checked against the collections by the caller.
type ParticipantCandidate struct {
	Participant
	malformed fieldSet
}

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// ValidateContact checks nombre, email and telefono.
func (c ParticipantCandidate) ValidateContact() error {
	p := c.Participant
	switch {
	case c.malformed.has("nombre") || utf8.RuneCountInString(p.Nombre) < 2:
		return ErrNombreInvalid
	case c.malformed.has("email") || !emailPattern.MatchString(p.Email):
		return ErrEmailInvalid
	case c.malformed.has("telefono"):
		return ErrTelefonoInvalid
	}
	return nil
}

// ValidateReference checks that a workshop id is present.
func (c ParticipantCandidate) ValidateReference() error {
	if c.malformed.has("tallerId") || c.TallerID == "" {
		return ErrTallerIDRequired
	}
	return nil
}
