package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrMachineNotFound la máquina referida por un evento no existe en la
	// flota. Los handlers lo absorben en silencio: un evento para una máquina
	// desconocida se descarta, no es una falla.
	ErrMachineNotFound = errors.New("máquina no encontrada")

	// ErrDuplicateMachine ya existe una máquina con ese id en la flota.
	ErrDuplicateMachine = errors.New("máquina duplicada")
)
