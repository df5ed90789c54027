package memory

import (
	"context"
	"slices"

	"github.com/udi/talleres-api/internal/domain"
)

type WorkshopRepository struct {
	store *Store
}

func NewWorkshopRepository(store *Store) *WorkshopRepository {
	return &WorkshopRepository{store: store}
}

func (r *WorkshopRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.store.WithTx(ctx, fn)
}

func (r *WorkshopRepository) ListWorkshops(ctx context.Context) ([]domain.Workshop, error) {
	var out []domain.Workshop
	r.store.read(ctx, func() {
		out = slices.Clone(r.store.workshops)
	})
	if out == nil {
		out = []domain.Workshop{}
	}
	return out, nil
}

func (r *WorkshopRepository) GetWorkshop(ctx context.Context, id string) (domain.Workshop, error) {
	var (
		w     domain.Workshop
		found bool
	)
	r.store.read(ctx, func() {
		if i := r.store.workshopIndex(id); i >= 0 {
			w, found = r.store.workshops[i], true
		}
	})
	if !found {
		return domain.Workshop{}, domain.ErrWorkshopNotFound
	}
	return w, nil
}

func (r *WorkshopRepository) CreateWorkshop(ctx context.Context, w domain.Workshop) error {
	r.store.write(ctx, func() {
		r.store.workshops = append(r.store.workshops, w)
	})
	return nil
}

// ReplaceWorkshop overwrites the stored workshop with the same id, keeping its
// position in the collection.
func (r *WorkshopRepository) ReplaceWorkshop(ctx context.Context, w domain.Workshop) error {
	err := domain.ErrWorkshopNotFound
	r.store.write(ctx, func() {
		if i := r.store.workshopIndex(w.ID); i >= 0 {
			r.store.workshops[i] = w
			err = nil
		}
	})
	return err
}

func (r *WorkshopRepository) DeleteWorkshop(ctx context.Context, id string) error {
	err := domain.ErrWorkshopNotFound
	r.store.write(ctx, func() {
		if i := r.store.workshopIndex(id); i >= 0 {
			r.store.workshops = slices.Delete(r.store.workshops, i, i+1)
			err = nil
		}
	})
	return err
}

func (s *Store) workshopIndex(id string) int {
	return slices.IndexFunc(s.workshops, func(w domain.Workshop) bool {
		return w.ID == id
	})
}
