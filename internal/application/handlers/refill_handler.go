package handlers

import (
	"errors"

	"github.com/jhoicas/vending-fleet/internal/domain"
	"github.com/jhoicas/vending-fleet/internal/domain/event"
	"github.com/jhoicas/vending-fleet/internal/domain/repository"
	"github.com/jhoicas/vending-fleet/pkg/logger"
)

// RefillHandler procesa eventos de reposición: incrementa stock y, cuando la
// reposición cruza el umbral hacia arriba, publica la notificación de stock
// restablecido.
type RefillHandler struct {
	machines  repository.MachineRepository
	publisher Publisher
	log       *logger.Logger
}

// NewRefillHandler construye el handler de reposiciones.
func NewRefillHandler(machines repository.MachineRepository, publisher Publisher, log *logger.Logger) *RefillHandler {
	return &RefillHandler{
		machines:  machines,
		publisher: publisher,
		log:       log,
	}
}

// Handle aplica una reposición sobre la máquina destino. Reposiciones con el
// stock ya sobre el umbral no notifican nada; una máquina desconocida se
// descarta en silencio.
func (h *RefillHandler) Handle(ev event.Event) error {
	if ev.Kind != event.KindRefill {
		return nil
	}

	m, err := h.machines.FindByID(ev.MachineID)
	if err != nil {
		if errors.Is(err, domain.ErrMachineNotFound) {
			h.log.Debug().
				Str("machine_id", ev.MachineID).
				Str("event_id", ev.ID).
				Msg("reposición para máquina desconocida, evento descartado")
			return nil
		}
		return err
	}

	if m.ApplyRefill(ev.Quantity) {
		return h.publisher.Publish(event.NewStockOk(m.ID()))
	}
	return nil
}
