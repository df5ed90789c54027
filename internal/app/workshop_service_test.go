package app

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udi/talleres-api/internal/domain"
	"github.com/udi/talleres-api/internal/storage/memory"
)

func sequentialIDs(prefix string) IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func workshopPatch(t testing.TB, body string) domain.WorkshopPatch {
	t.Helper()
	var p domain.WorkshopPatch
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	return p
}

const validWorkshopBody = `{"titulo":"Taller X","fecha":"2025-01-01T00:00:00.000Z","duracionMin":60,"cupos":10,"modalidad":"virtual","docente":"X"}`

func newWorkshopService(store *memory.Store) *WorkshopService {
	return NewWorkshopService(memory.NewWorkshopRepository(store), WithIDGenerator(sequentialIDs("w")))
}

func TestWorkshopService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id and echoes fields", func(t *testing.T) {
		svc := newWorkshopService(memory.NewStore())

		w, err := svc.CreateWorkshop(ctx, workshopPatch(t, validWorkshopBody))
		require.NoError(t, err)
		assert.Equal(t, domain.Workshop{
			ID:          "w-1",
			Titulo:      "Taller X",
			Fecha:       "2025-01-01T00:00:00.000Z",
			DuracionMin: 60,
			Cupos:       10,
			Modalidad:   domain.ModalityRemote,
			Docente:     "X",
		}, w)

		list, err := svc.ListWorkshops(ctx)
		require.NoError(t, err)
		assert.Equal(t, []domain.Workshop{w}, list)
	})

	t.Run("rejects short titulo without storing", func(t *testing.T) {
		svc := newWorkshopService(memory.NewStore())

		_, err := svc.CreateWorkshop(ctx, workshopPatch(t, `{"titulo":"AB"}`))
		assert.ErrorIs(t, err, domain.ErrTituloInvalid)

		list, err := svc.ListWorkshops(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("body id is ignored", func(t *testing.T) {
		svc := newWorkshopService(memory.NewStore())
		body := `{"id":"mine","titulo":"Taller X","fecha":"2025-01-01","duracionMin":60,"cupos":10,"modalidad":"presencial","docente":"X"}`

		w, err := svc.CreateWorkshop(ctx, workshopPatch(t, body))
		require.NoError(t, err)
		assert.Equal(t, "w-1", w.ID)
	})
}

func TestWorkshopService_Update(t *testing.T) {
	ctx := context.Background()
	svc := newWorkshopService(memory.NewStore())

	created, err := svc.CreateWorkshop(ctx, workshopPatch(t, validWorkshopBody))
	require.NoError(t, err)

	t.Run("merges present fields only", func(t *testing.T) {
		updated, err := svc.UpdateWorkshop(ctx, created.ID, workshopPatch(t, `{"cupos":25,"docente":"Y"}`))
		require.NoError(t, err)

		want := created
		want.Cupos = 25
		want.Docente = "Y"
		assert.Equal(t, want, updated)

		got, err := svc.GetWorkshop(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("invalid merge leaves record untouched", func(t *testing.T) {
		before, err := svc.GetWorkshop(ctx, created.ID)
		require.NoError(t, err)

		_, err = svc.UpdateWorkshop(ctx, created.ID, workshopPatch(t, `{"cupos":2}`))
		assert.ErrorIs(t, err, domain.ErrCuposInvalid)

		after, err := svc.GetWorkshop(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.UpdateWorkshop(ctx, "unknown-id", workshopPatch(t, `{"cupos":25}`))
		assert.ErrorIs(t, err, domain.ErrWorkshopNotFound)
	})

	t.Run("id cannot change", func(t *testing.T) {
		updated, err := svc.UpdateWorkshop(ctx, created.ID, workshopPatch(t, `{"id":"other"}`))
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
	})
}

func TestWorkshopService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := newWorkshopService(memory.NewStore())

	created, err := svc.CreateWorkshop(ctx, workshopPatch(t, validWorkshopBody))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteWorkshop(ctx, created.ID))
	_, err = svc.GetWorkshop(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrWorkshopNotFound)

	assert.ErrorIs(t, svc.DeleteWorkshop(ctx, "unknown-id"), domain.ErrWorkshopNotFound)
}
