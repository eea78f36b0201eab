package handlers

import "github.com/jhoicas/vending-fleet/internal/domain/event"

// Publisher es el puerto hacia el despachador que usan los handlers para
// emitir eventos derivados. Lo implementa pubsub.Dispatcher.
type Publisher interface {
	Publish(ev event.Event) error
}
