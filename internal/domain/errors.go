package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los cuatro tipos son fatales
// para la corrida completa: no existe modo de éxito parcial ni skip-and-continue.
var (
	// ErrMissingSource el artefacto de entrada esperado no existe.
	ErrMissingSource = errors.New("fuente de datos no encontrada")
	// ErrMalformedSource el contenido no puede parsearse a la forma esperada.
	ErrMalformedSource = errors.New("fuente de datos malformada")
	// ErrSchemaViolation un registro parseado incumple la validación de campos.
	ErrSchemaViolation = errors.New("registro inválido según el esquema")
	// ErrReferentialViolation un usuario referencia una empresa inexistente.
	ErrReferentialViolation = errors.New("referencia a empresa inexistente")
)
