// Package pubsub implementa el despachador publish/subscribe del núcleo:
// entrega síncrona, en orden de registro, dentro del mismo proceso. No hay
// colas ni goroutines de fondo; Publish recorre los handlers en profundidad
// y retorna cuando todos terminaron.
package pubsub

import (
	"sync"

	"github.com/jhoicas/vending-fleet/internal/domain/event"
)

// Handler consume eventos de una categoría. La identidad de registro es la
// identidad de la interfaz Go: registrar el mismo puntero dos veces hace que
// reciba el evento dos veces, y Unsubscribe compara por esa misma identidad.
type Handler interface {
	Handle(ev event.Event) error
}

// Dispatcher enruta eventos por Kind hacia los handlers suscritos.
//
// El mutex protege solo el registro de suscripciones; nunca se sostiene
// mientras se invoca un handler, así que un handler puede publicar eventos
// anidados o alterar suscripciones sin bloquearse a sí mismo.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[event.Kind][]Handler
}

// NewDispatcher crea un despachador sin suscripciones.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[event.Kind][]Handler),
	}
}

// Subscribe agrega h al final de la lista de kind. No hay deduplicación.
func (d *Dispatcher) Subscribe(kind event.Kind, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[kind] = append(d.handlers[kind], h)
}

// Unsubscribe elimina todas las ocurrencias de h en la lista de kind.
// Es un no-op si kind no tiene suscripciones o h no está presente.
func (d *Dispatcher) Unsubscribe(kind event.Kind, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()

	current, ok := d.handlers[kind]
	if !ok {
		return
	}
	remaining := make([]Handler, 0, len(current))
	for _, registered := range current {
		if registered != h {
			remaining = append(remaining, registered)
		}
	}
	if len(remaining) == 0 {
		delete(d.handlers, kind)
		return
	}
	d.handlers[kind] = remaining
}

// Publish entrega ev de forma síncrona a cada handler suscrito a ev.Kind,
// en orden de registro, sobre una instantánea de la lista tomada al iniciar
// la entrega: suscripciones o bajas hechas por un handler durante el
// recorrido no afectan la pasada en curso. Un Kind sin suscriptores no es un
// error.
//
// Si un handler devuelve error, la entrega se aborta ahí mismo y el error
// sube al publicador: el despachador no reintenta ni aísla suscriptores.
// Publish es reentrante; un handler puede publicar eventos derivados y esa
// entrega anidada se completa antes de continuar la pasada externa.
func (d *Dispatcher) Publish(ev event.Event) error {
	d.mu.RLock()
	registered := d.handlers[ev.Kind]
	snapshot := make([]Handler, len(registered))
	copy(snapshot, registered)
	d.mu.RUnlock()

	for _, h := range snapshot {
		if err := h.Handle(ev); err != nil {
			return err
		}
	}
	return nil
}
