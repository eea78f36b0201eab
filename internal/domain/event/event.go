// Package event define los eventos de dominio de la flota de máquinas
// expendedoras. Un Event es un valor inmutable: se construye con uno de los
// constructores y se pasa siempre por valor.
package event

import (
	"time"

	"github.com/google/uuid"
)

// Kind identifica la categoría de un evento. Conjunto cerrado: para extender
// el sistema se agrega una constante nueva, no se inspeccionan tipos en
// tiempo de ejecución.
type Kind string

const (
	// KindSale venta en una máquina: descuenta stock.
	KindSale Kind = "sale"
	// KindRefill reposición en una máquina: incrementa stock.
	KindRefill Kind = "refill"
	// KindLowStockWarning notificación derivada: el stock cayó bajo el umbral.
	KindLowStockWarning Kind = "lowStockWarning"
	// KindStockOk notificación derivada: el stock volvió al umbral o por encima.
	KindStockOk Kind = "stockLevelOk"
)

// Event representa un hecho ocurrido sobre una máquina de la flota.
// Quantity solo tiene significado para sale/refill; en las notificaciones
// derivadas queda en cero.
type Event struct {
	ID         string
	Kind       Kind
	MachineID  string
	Quantity   int
	OccurredAt time.Time
}

// NewSale construye un evento de venta por qty unidades en la máquina machineID.
func NewSale(machineID string, qty int) Event {
	return newEvent(KindSale, machineID, qty)
}

// NewRefill construye un evento de reposición por qty unidades en la máquina machineID.
func NewRefill(machineID string, qty int) Event {
	return newEvent(KindRefill, machineID, qty)
}

// NewLowStockWarning construye la notificación de stock bajo para machineID.
func NewLowStockWarning(machineID string) Event {
	return newEvent(KindLowStockWarning, machineID, 0)
}

// NewStockOk construye la notificación de stock restablecido para machineID.
func NewStockOk(machineID string) Event {
	return newEvent(KindStockOk, machineID, 0)
}

func newEvent(kind Kind, machineID string, qty int) Event {
	return Event{
		ID:         uuid.NewString(),
		Kind:       kind,
		MachineID:  machineID,
		Quantity:   qty,
		OccurredAt: time.Now(),
	}
}
