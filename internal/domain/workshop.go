package domain

import (
	"encoding/json"
	"time"
	"unicode/utf8"
)

type Modality string

const (
	ModalityInPerson Modality = "presencial"
	ModalityRemote   Modality = "virtual"
)

func (m Modality) Valid() bool {
	return m == ModalityInPerson || m == ModalityRemote
}

// Workshop represents a scheduled taller with capacity and instructor.
type Workshop struct {
	ID          string   `json:"id"`
	Titulo      string   `json:"titulo"`
	Fecha       string   `json:"fecha"`
	DuracionMin int      `json:"duracionMin"`
	Cupos       int      `json:"cupos"`
	Modalidad   Modality `json:"modalidad"`
	Docente     string   `json:"docente"`
}

// WorkshopPatch carries the fields of a create or update body. The id is
// server-owned and never read from input.
type WorkshopPatch struct {
	Titulo      Field[string]
	Fecha       Field[string]
	DuracionMin Field[int]
	Cupos       Field[int]
	Modalidad   Field[Modality]
	Docente     Field[string]
}

func (p *WorkshopPatch) UnmarshalJSON(data []byte) error {
	return decodeFields(data, map[string]json.Unmarshaler{
		"titulo":      &p.Titulo,
		"fecha":       &p.Fecha,
		"duracionMin": &p.DuracionMin,
		"cupos":       &p.Cupos,
		"modalidad":   &p.Modalidad,
		"docente":     &p.Docente,
	})
}

// Apply overlays the present fields on base.
func (p WorkshopPatch) Apply(base Workshop) WorkshopCandidate {
	c := WorkshopCandidate{Workshop: base, malformed: fieldSet{}}
	overlay(p.Titulo, &c.Titulo, "titulo", c.malformed)
	overlay(p.Fecha, &c.Fecha, "fecha", c.malformed)
	overlay(p.DuracionMin, &c.DuracionMin, "duracionMin", c.malformed)
	overlay(p.Cupos, &c.Cupos, "cupos", c.malformed)
	overlay(p.Modalidad, &c.Modalidad, "modalidad", c.malformed)
	overlay(p.Docente, &c.Docente, "docente", c.malformed)
	return c
}

// WorkshopCandidate is the proposed state of a workshop before it is stored.
type WorkshopCandidate struct {
	Workshop
	malformed fieldSet
}

// Validate checks the candidate rule by rule and returns the first violation.
func (c WorkshopCandidate) Validate() error {
	w := c.Workshop
	switch {
	case c.malformed.has("titulo") || utf8.RuneCountInString(w.Titulo) < 3:
		return ErrTituloInvalid
	case c.malformed.has("fecha") || !ValidDate(w.Fecha):
		return ErrFechaInvalid
	case c.malformed.has("duracionMin") || w.DuracionMin <= 0:
		return ErrDuracionInvalid
	case c.malformed.has("cupos") || w.Cupos < 5:
		return ErrCuposInvalid
	case c.malformed.has("modalidad") || !w.Modalidad.Valid():
		return ErrModalidadInvalid
	case c.malformed.has("docente") || w.Docente == "":
		return ErrDocenteRequired
	}
	return nil
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ValidDate reports whether s parses as an ISO 8601 date or date-time.
func ValidDate(s string) bool {
	if s == "" {
		return false
	}
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
