// Package memory implementa los repositorios de la flota sobre estructuras
// en memoria. El núcleo no persiste nada: la flota se crea al arranque y
// vive lo que vive el proceso.
package memory

import (
	"sync"

	"github.com/jhoicas/vending-fleet/internal/domain"
	"github.com/jhoicas/vending-fleet/internal/domain/entity"
)

// MachineRepository guarda las máquinas de la flota en un mapa protegido por
// RWMutex. Implementa repository.MachineRepository.
type MachineRepository struct {
	mu       sync.RWMutex
	machines map[string]*entity.Machine
	order    []string
}

// NewMachineRepository crea un repositorio vacío.
func NewMachineRepository() *MachineRepository {
	return &MachineRepository{
		machines: make(map[string]*entity.Machine),
	}
}

// Save registra una máquina nueva en la flota.
func (r *MachineRepository) Save(m *entity.Machine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.machines[m.ID()]; exists {
		return domain.ErrDuplicateMachine
	}
	r.machines[m.ID()] = m
	r.order = append(r.order, m.ID())
	return nil
}

// FindByID devuelve la máquina con ese id o domain.ErrMachineNotFound.
func (r *MachineRepository) FindByID(id string) (*entity.Machine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.machines[id]
	if !ok {
		return nil, domain.ErrMachineNotFound
	}
	return m, nil
}

// All devuelve las máquinas en orden de registro.
func (r *MachineRepository) All() []*entity.Machine {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Machine, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.machines[id])
	}
	return out
}
