// Package handlers contiene los suscriptores que reaccionan a eventos de
// venta y reposición mutando el estado de la flota. Los handlers son sin
// estado: todo el estado vive en las máquinas y la política de notificación
// es de la entidad Machine; aquí solo se publica lo que la transición
// reporta. No existe un suscriptor de umbral aparte, de modo que una misma
// transición nunca puede notificarse dos veces.
package handlers

import (
	"errors"

	"github.com/jhoicas/vending-fleet/internal/domain"
	"github.com/jhoicas/vending-fleet/internal/domain/event"
	"github.com/jhoicas/vending-fleet/internal/domain/repository"
	"github.com/jhoicas/vending-fleet/pkg/logger"
)

// SaleHandler procesa eventos de venta: descuenta stock y, cuando la venta
// deja a la máquina bajo el umbral por primera vez en el episodio, publica
// la advertencia de stock bajo.
type SaleHandler struct {
	machines  repository.MachineRepository
	publisher Publisher
	log       *logger.Logger
}

// NewSaleHandler construye el handler de ventas.
func NewSaleHandler(machines repository.MachineRepository, publisher Publisher, log *logger.Logger) *SaleHandler {
	return &SaleHandler{
		machines:  machines,
		publisher: publisher,
		log:       log,
	}
}

// Handle aplica una venta sobre la máquina destino. Un evento para una
// máquina desconocida se descarta en silencio; la cantidad no se valida
// (contrato del productor: el stock puede quedar negativo).
func (h *SaleHandler) Handle(ev event.Event) error {
	if ev.Kind != event.KindSale {
		return nil
	}

	m, err := h.machines.FindByID(ev.MachineID)
	if err != nil {
		if errors.Is(err, domain.ErrMachineNotFound) {
			h.log.Debug().
				Str("machine_id", ev.MachineID).
				Str("event_id", ev.ID).
				Msg("venta para máquina desconocida, evento descartado")
			return nil
		}
		return err
	}

	if m.ApplySale(ev.Quantity) {
		return h.publisher.Publish(event.NewLowStockWarning(m.ID()))
	}
	return nil
}
