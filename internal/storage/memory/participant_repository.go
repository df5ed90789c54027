package memory

import (
	"context"
	"slices"

	"github.com/udi/talleres-api/internal/domain"
)

type ParticipantRepository struct {
	store *Store
}

func NewParticipantRepository(store *Store) *ParticipantRepository {
	return &ParticipantRepository{store: store}
}

func (r *ParticipantRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.store.WithTx(ctx, fn)
}

func (r *ParticipantRepository) ListParticipants(ctx context.Context) ([]domain.Participant, error) {
	var out []domain.Participant
	r.store.read(ctx, func() {
		out = make([]domain.Participant, 0, len(r.store.participants))
		for _, p := range r.store.participants {
			out = append(out, cloneParticipant(p))
		}
	})
	return out, nil
}

func (r *ParticipantRepository) GetParticipant(ctx context.Context, id string) (domain.Participant, error) {
	var (
		p     domain.Participant
		found bool
	)
	r.store.read(ctx, func() {
		if i := r.store.participantIndex(id); i >= 0 {
			p, found = cloneParticipant(r.store.participants[i]), true
		}
	})
	if !found {
		return domain.Participant{}, domain.ErrParticipantNotFound
	}
	return p, nil
}

// FindParticipantByEmail returns the participant holding email, or nil.
func (r *ParticipantRepository) FindParticipantByEmail(ctx context.Context, email string) (*domain.Participant, error) {
	var found *domain.Participant
	r.store.read(ctx, func() {
		for _, p := range r.store.participants {
			if p.Email == email {
				c := cloneParticipant(p)
				found = &c
				return
			}
		}
	})
	return found, nil
}

// WorkshopExists lets the participant validator check references without a
// second repository.
func (r *ParticipantRepository) WorkshopExists(ctx context.Context, id string) (bool, error) {
	var found bool
	r.store.read(ctx, func() {
		found = r.store.workshopIndex(id) >= 0
	})
	return found, nil
}

func (r *ParticipantRepository) CreateParticipant(ctx context.Context, p domain.Participant) error {
	r.store.write(ctx, func() {
		r.store.participants = append(r.store.participants, cloneParticipant(p))
	})
	return nil
}

func (r *ParticipantRepository) ReplaceParticipant(ctx context.Context, p domain.Participant) error {
	err := domain.ErrParticipantNotFound
	r.store.write(ctx, func() {
		if i := r.store.participantIndex(p.ID); i >= 0 {
			r.store.participants[i] = cloneParticipant(p)
			err = nil
		}
	})
	return err
}

func (r *ParticipantRepository) DeleteParticipant(ctx context.Context, id string) error {
	err := domain.ErrParticipantNotFound
	r.store.write(ctx, func() {
		if i := r.store.participantIndex(id); i >= 0 {
			r.store.participants = slices.Delete(r.store.participants, i, i+1)
			err = nil
		}
	})
	return err
}

func (s *Store) participantIndex(id string) int {
	return slices.IndexFunc(s.participants, func(p domain.Participant) bool {
		return p.ID == id
	})
}

// cloneParticipant copies the telefono pointer so callers never share
// storage with the collection.
func cloneParticipant(p domain.Participant) domain.Participant {
	if p.Telefono != nil {
		tel := *p.Telefono
		p.Telefono = &tel
	}
	return p
}
