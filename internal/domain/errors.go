package domain

import "errors"

var (
	ErrWorkshopNotFound    = errors.New("Taller no encontrado")
	ErrParticipantNotFound = errors.New("Participante no encontrado")
)

// ValidationError reports the first rule a candidate record violates.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

var (
	ErrTituloInvalid      = newValidationError("El título es requerido y debe tener al menos 3 caracteres.")
	ErrFechaInvalid       = newValidationError("La fecha es requerida y debe ser un formato ISO válido.")
	ErrDuracionInvalid    = newValidationError("La duración es requerida y debe ser mayor a 0.")
	ErrCuposInvalid       = newValidationError("Los cupos son requeridos y deben ser 5 o más.")
	ErrModalidadInvalid   = newValidationError("La modalidad es requerida y debe ser 'presencial' o 'virtual'.")
	ErrDocenteRequired    = newValidationError("El docente es requerido.")
	ErrNombreInvalid      = newValidationError("El nombre es requerido y debe tener al menos 2 caracteres.")
	ErrEmailInvalid       = newValidationError("El email es requerido y debe tener un formato válido.")
	ErrTelefonoInvalid    = newValidationError("El teléfono debe ser un texto.")
	ErrEmailTaken         = newValidationError("El email ya está registrado por otro participante.")
	ErrTallerIDRequired   = newValidationError("El tallerId es requerido.")
	ErrWorkshopRefMissing = newValidationError("El tallerId proporcionado no existe.")
)
