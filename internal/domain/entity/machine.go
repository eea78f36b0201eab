package entity

import "sync"

// Umbral de stock bajo: una máquina con menos de MinStockLevel unidades
// dispara la advertencia; al volver a MinStockLevel o más se notifica el
// restablecimiento.
const MinStockLevel = 3

// Stock inicial de toda máquina al crearse.
const InitialStockLevel = 10

// Machine representa una máquina expendedora con su stock y los dos latches
// de notificación. Los latches implementan histéresis: cada notificación se
// emite a lo sumo una vez por episodio (el intervalo entre dos cruces del
// umbral en la misma dirección). La entidad es la única dueña de la política
// de notificación; quien aplica una venta o reposición solo publica lo que
// la transición reporta.
//
// Invariante de latches pareados: disparar una notificación limpia siempre
// el latch opuesto; ninguna otra operación toca los latches.
type Machine struct {
	mu sync.Mutex

	id              string
	stockLevel      int
	lowStockWarned  bool
	stockOkNotified bool
}

// NewMachine crea una máquina con stock inicial de InitialStockLevel unidades
// y ambos latches en reposo.
func NewMachine(id string) *Machine {
	return &Machine{
		id:         id,
		stockLevel: InitialStockLevel,
	}
}

// ID devuelve el identificador inmutable de la máquina.
func (m *Machine) ID() string {
	return m.id
}

// StockLevel devuelve el nivel de stock actual. Puede ser negativo: el núcleo
// no valida cantidades, eso es contrato del productor de eventos.
func (m *Machine) StockLevel() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stockLevel
}

// ApplySale descuenta qty unidades del stock. Devuelve true exactamente
// cuando la venta produce la transición de stock bajo: el nivel quedó por
// debajo del umbral y el latch de advertencia estaba en reposo. En ese caso
// el latch queda armado y el latch opuesto se limpia; ventas posteriores ya
// bajo el umbral no vuelven a reportar la transición.
func (m *Machine) ApplySale(qty int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stockLevel -= qty
	if m.stockLevel < MinStockLevel && !m.lowStockWarned {
		m.lowStockWarned = true
		m.stockOkNotified = false
		return true
	}
	return false
}

// ApplyRefill incrementa el stock en qty unidades. Devuelve true exactamente
// cuando la reposición cruza el umbral hacia arriba (nivel previo bajo el
// umbral, nivel nuevo en el umbral o más) con el latch de restablecimiento
// en reposo. Reposiciones con el stock ya en el umbral o por encima no
// reportan nada.
func (m *Machine) ApplyRefill(qty int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	previous := m.stockLevel
	m.stockLevel += qty
	if previous < MinStockLevel && m.stockLevel >= MinStockLevel && !m.stockOkNotified {
		m.stockOkNotified = true
		m.lowStockWarned = false
		return true
	}
	return false
}
