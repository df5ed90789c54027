package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticipantCandidate_ValidateContact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want error
	}{
		{name: "valid", body: `{"nombre":"Ana","email":"ana@demo.com"}`},
		{name: "short nombre", body: `{"nombre":"A","email":"ana@demo.com"}`, want: ErrNombreInvalid},
		{name: "missing email", body: `{"nombre":"Ana"}`, want: ErrEmailInvalid},
		{name: "email without domain dot", body: `{"nombre":"Ana","email":"ana@demo"}`, want: ErrEmailInvalid},
		{name: "email without at", body: `{"nombre":"Ana","email":"ana.demo.com"}`, want: ErrEmailInvalid},
		{name: "numeric telefono", body: `{"nombre":"Ana","email":"ana@demo.com","telefono":700}`, want: ErrTelefonoInvalid},
		{name: "null telefono", body: `{"nombre":"Ana","email":"ana@demo.com","telefono":null}`},
		{name: "upper case email key", body: `{"nombre":"Ana","EMAIL":"ana@demo.com"}`, want: ErrEmailInvalid},
		{name: "upper case nombre key", body: `{"NOMBRE":"Ana","email":"ana@demo.com"}`, want: ErrNombreInvalid},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var patch ParticipantPatch
			require.NoError(t, json.Unmarshal([]byte(tt.body), &patch))
			err := patch.Apply(Participant{}).ValidateContact()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParticipantCandidate_ValidateReference(t *testing.T) {
	var patch ParticipantPatch
	require.NoError(t, json.Unmarshal([]byte(`{"nombre":"Ana"}`), &patch))
	assert.ErrorIs(t, patch.Apply(Participant{}).ValidateReference(), ErrTallerIDRequired)

	require.NoError(t, json.Unmarshal([]byte(`{"TallerId":"w1"}`), &patch))
	assert.ErrorIs(t, patch.Apply(Participant{}).ValidateReference(), ErrTallerIDRequired)

	require.NoError(t, json.Unmarshal([]byte(`{"tallerId":"w1"}`), &patch))
	assert.NoError(t, patch.Apply(Participant{}).ValidateReference())
}

func TestParticipantPatch_TelefonoPresence(t *testing.T) {
	phone := "700-11111"
	base := Participant{ID: "p1", Nombre: "Ana", Email: "ana@demo.com", Telefono: &phone, TallerID: "w1"}

	var keep ParticipantPatch
	require.NoError(t, json.Unmarshal([]byte(`{"nombre":"Ana María"}`), &keep))
	c := keep.Apply(base)
	require.NotNil(t, c.Telefono)
	assert.Equal(t, phone, *c.Telefono)

	var drop ParticipantPatch
	require.NoError(t, json.Unmarshal([]byte(`{"telefono":null}`), &drop))
	assert.Nil(t, drop.Apply(base).Telefono)
}

func TestParticipant_OmitsAbsentTelefono(t *testing.T) {
	out, err := json.Marshal(Participant{ID: "p1", Nombre: "Luis", Email: "luis@demo.com", TallerID: "w1"})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "telefono")
}
