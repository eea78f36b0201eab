package repository

import "github.com/jhoicas/vending-fleet/internal/domain/entity"

// MachineRepository es el handle compartido al estado de la flota. Todos los
// suscriptores ven las mismas máquinas a través de esta interfaz en lugar de
// compartir un slice por aliasing implícito.
type MachineRepository interface {
	// FindByID devuelve la máquina con ese id o domain.ErrMachineNotFound.
	FindByID(id string) (*entity.Machine, error)

	// All devuelve todas las máquinas de la flota.
	All() []*entity.Machine

	// Save registra una máquina nueva. Devuelve domain.ErrDuplicateMachine
	// si el id ya existe: la identidad de la flota se fija al arranque.
	Save(m *entity.Machine) error
}
