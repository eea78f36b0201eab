// Package source genera eventos de venta y reposición al azar para alimentar
// el despachador. Es el colaborador externo del núcleo: una fuente de datos
// simple, determinista bajo una semilla fija.
package source

import (
	"context"
	"math/rand"
	"time"

	"github.com/jhoicas/vending-fleet/internal/domain/event"
)

// Publisher es el puerto hacia el despachador. Lo implementa pubsub.Dispatcher.
type Publisher interface {
	Publish(ev event.Event) error
}

// RandomSource publica eventos aleatorios sobre un conjunto fijo de máquinas.
type RandomSource struct {
	publisher  Publisher
	machineIDs []string
	rng        *rand.Rand
	maxQty     int
	interval   time.Duration
}

// NewRandomSource construye la fuente. La misma semilla produce siempre la
// misma secuencia de eventos.
func NewRandomSource(publisher Publisher, machineIDs []string, seed int64, maxQty int, interval time.Duration) *RandomSource {
	return &RandomSource{
		publisher:  publisher,
		machineIDs: machineIDs,
		rng:        rand.New(rand.NewSource(seed)),
		maxQty:     maxQty,
		interval:   interval,
	}
}

// Run publica count eventos, esperando el intervalo configurado entre cada
// uno. Retorna al completar la cuenta, ante el primer error de entrega o al
// cancelarse el contexto.
func (s *RandomSource) Run(ctx context.Context, count int) error {
	for i := 0; i < count; i++ {
		if err := s.publisher.Publish(s.next()); err != nil {
			return err
		}
		if s.interval <= 0 {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.interval):
		}
	}
	return nil
}

func (s *RandomSource) next() event.Event {
	machineID := s.machineIDs[s.rng.Intn(len(s.machineIDs))]
	qty := 1 + s.rng.Intn(s.maxQty)
	if s.rng.Intn(2) == 0 {
		return event.NewSale(machineID, qty)
	}
	return event.NewRefill(machineID, qty)
}
