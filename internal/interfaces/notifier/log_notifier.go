// Package notifier contiene los consumidores finales de las notificaciones
// derivadas. El núcleo no tiene capa de presentación; este suscriptor las
// vuelca al log estructurado.
package notifier

import (
	"github.com/jhoicas/vending-fleet/internal/domain/event"
	"github.com/jhoicas/vending-fleet/pkg/logger"
)

// LogNotifier escribe cada notificación de stock en el log. Se suscribe a
// lowStockWarning y stockLevelOk.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el notificador.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Handle registra la notificación recibida.
func (n *LogNotifier) Handle(ev event.Event) error {
	switch ev.Kind {
	case event.KindLowStockWarning:
		n.log.Warn().
			Str("machine_id", ev.MachineID).
			Str("event_id", ev.ID).
			Msg("stock bajo: la máquina necesita reposición")
	case event.KindStockOk:
		n.log.Info().
			Str("machine_id", ev.MachineID).
			Str("event_id", ev.ID).
			Msg("stock restablecido")
	}
	return nil
}
