package repository

import "errors"

// Sentinel errors shared by every repository implementation. Services map
// them onto the API error taxonomy.
var (
	ErrNotFound  = errors.New("registro não encontrado")
	ErrDuplicate = errors.New("registro duplicado")
	// ErrInvalidField is returned when a dynamic lookup names a field
	// outside the repository's allow-list.
	ErrInvalidField = errors.New("campo inválido para busca")
)
