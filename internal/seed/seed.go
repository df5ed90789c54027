// Package seed loads the dataset the API starts with.
package seed

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"

	"github.com/udi/talleres-api/internal/domain"
)

//go:embed *.json
var seedFiles embed.FS

// WorkshopCreator is the minimal interface needed to seed workshops.
type WorkshopCreator interface {
	CreateWorkshop(ctx context.Context, in domain.WorkshopPatch) (domain.Workshop, error)
}

// ParticipantCreator is the minimal interface needed to seed participants.
type ParticipantCreator interface {
	CreateParticipant(ctx context.Context, in domain.ParticipantPatch) (domain.Participant, error)
}

// Result counts what Apply inserted.
type Result struct {
	Workshops    int
	Participants int
}

// entry is one workshop with the participants enrolled in it; the
// participants' tallerId is filled in once the workshop has its id.
type entry struct {
	Taller        domain.WorkshopPatch     `json:"taller"`
	Participantes []domain.ParticipantPatch `json:"participantes"`
}

// Apply inserts the embedded datasets in filename order through the
// services, so seeded rows pass the same validation as API writes.
func Apply(ctx context.Context, workshops WorkshopCreator, participants ParticipantCreator) (Result, error) {
	return apply(ctx, seedFiles, workshops, participants)
}

func apply(ctx context.Context, fsys fs.FS, workshops WorkshopCreator, participants ParticipantCreator) (Result, error) {
	var res Result

	names, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return res, fmt.Errorf("list seed files: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return res, fmt.Errorf("read seed %s: %w", name, err)
		}
		var entries []entry
		if err := json.Unmarshal(data, &entries); err != nil {
			return res, fmt.Errorf("decode seed %s: %w", name, err)
		}

		for i, e := range entries {
			w, err := workshops.CreateWorkshop(ctx, e.Taller)
			if err != nil {
				return res, fmt.Errorf("seed %s workshop %d: %w", name, i, err)
			}
			res.Workshops++

			for j, p := range e.Participantes {
				p.TallerID = domain.Some(w.ID)
				if _, err := participants.CreateParticipant(ctx, p); err != nil {
					return res, fmt.Errorf("seed %s workshop %d participant %d: %w", name, i, j, err)
				}
				res.Participants++
			}
		}
	}
	return res, nil
}
