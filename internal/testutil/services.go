// Package testutil wires in-memory services for tests in other packages.
package testutil

import (
	"testing"

	"github.com/udi/talleres-api/internal/app"
	"github.com/udi/talleres-api/internal/storage/memory"
)

// Services are backed by one fresh store.
type Services struct {
	Store        *memory.Store
	Workshops    *app.WorkshopService
	Participants *app.ParticipantService
}

func NewServices(t testing.TB, opts ...app.Option) Services {
	t.Helper()
	store := memory.NewStore()
	return Services{
		Store:        store,
		Workshops:    app.NewWorkshopService(memory.NewWorkshopRepository(store), opts...),
		Participants: app.NewParticipantService(memory.NewParticipantRepository(store), opts...),
	}
}

// ValidWorkshopBody is a create body that passes every workshop rule.
const ValidWorkshopBody = `{"titulo":"Taller X","fecha":"2025-01-01T00:00:00.000Z","duracionMin":60,"cupos":10,"modalidad":"virtual","docente":"X"}`
