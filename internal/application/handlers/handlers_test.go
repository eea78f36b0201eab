package handlers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vending-fleet/internal/application/handlers"
	"github.com/jhoicas/vending-fleet/internal/domain/entity"
	"github.com/jhoicas/vending-fleet/internal/domain/event"
	"github.com/jhoicas/vending-fleet/internal/infrastructure/memory"
	"github.com/jhoicas/vending-fleet/internal/pubsub"
	"github.com/jhoicas/vending-fleet/pkg/logger"
)

// notificationRecorder captura las notificaciones derivadas que llegan por el
// despachador.
type notificationRecorder struct {
	events []event.Event
}

func (r *notificationRecorder) Handle(ev event.Event) error {
	r.events = append(r.events, ev)
	return nil
}

func (r *notificationRecorder) countByKind(kind event.Kind) int {
	n := 0
	for _, ev := range r.events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

// newFleet arma el cableado completo del núcleo: repositorio con la máquina
// "001", despachador, handlers de venta y reposición, y un grabador de
// notificaciones suscrito a ambas categorías derivadas.
func newFleet(t *testing.T) (*pubsub.Dispatcher, *memory.MachineRepository, *notificationRecorder) {
	t.Helper()

	machines := memory.NewMachineRepository()
	require.NoError(t, machines.Save(entity.NewMachine("001")))

	d := pubsub.NewDispatcher()
	log := logger.Nop()
	d.Subscribe(event.KindSale, handlers.NewSaleHandler(machines, d, log))
	d.Subscribe(event.KindRefill, handlers.NewRefillHandler(machines, d, log))

	rec := &notificationRecorder{}
	d.Subscribe(event.KindLowStockWarning, rec)
	d.Subscribe(event.KindStockOk, rec)

	return d, machines, rec
}

func mustStock(t *testing.T, machines *memory.MachineRepository, id string) int {
	t.Helper()
	m, err := machines.FindByID(id)
	require.NoError(t, err)
	return m.StockLevel()
}

// TestEscenarios recorre los escenarios 1 a 5 en secuencia sobre la misma
// flota, exactamente como ocurrirían en una corrida real.
func TestEscenarios_CicloCompleto(t *testing.T) {
	d, machines, rec := newFleet(t)

	// Escenario 1: venta de 8 deja el stock en 2 y dispara la advertencia.
	require.NoError(t, d.Publish(event.NewSale("001", 8)))
	assert.Equal(t, 2, mustStock(t, machines, "001"))
	require.Equal(t, 1, rec.countByKind(event.KindLowStockWarning),
		"la advertencia debe emitirse exactamente una vez")
	assert.Equal(t, "001", rec.events[0].MachineID)

	// Escenario 2: otra venta bajo el umbral no repite la advertencia.
	require.NoError(t, d.Publish(event.NewSale("001", 1)))
	assert.Equal(t, 1, mustStock(t, machines, "001"))
	assert.Equal(t, 1, rec.countByKind(event.KindLowStockWarning),
		"el latch armado debe suprimir advertencias repetidas")

	// Escenario 3: la reposición cruza el umbral y notifica el restablecimiento.
	require.NoError(t, d.Publish(event.NewRefill("001", 5)))
	assert.Equal(t, 6, mustStock(t, machines, "001"))
	assert.Equal(t, 1, rec.countByKind(event.KindStockOk),
		"el restablecimiento debe emitirse exactamente una vez")

	// Escenario 4: máquina desconocida, ni estado ni notificaciones cambian.
	require.NoError(t, d.Publish(event.NewSale("999", 1)))
	assert.Equal(t, 6, mustStock(t, machines, "001"))
	assert.Len(t, rec.events, 2, "un evento para una máquina desconocida se descarta en silencio")

	// Escenario 5: reponer con stock ya sobre el umbral no duplica la notificación.
	require.NoError(t, d.Publish(event.NewRefill("001", 3)))
	assert.Equal(t, 9, mustStock(t, machines, "001"))
	assert.Equal(t, 1, rec.countByKind(event.KindStockOk),
		"reponer sin cruce no debe notificar de nuevo")
}

// TestPropiedad_AdvertenciaUnicaEntreRestablecimientos publica una secuencia
// arbitraria de ventas y verifica la propiedad global: a lo sumo una
// advertencia entre dos restablecimientos.
func TestPropiedad_AdvertenciaUnicaEntreRestablecimientos(t *testing.T) {
	d, _, rec := newFleet(t)

	for i := 0; i < 6; i++ {
		require.NoError(t, d.Publish(event.NewSale("001", 2)))
	}
	assert.Equal(t, 1, rec.countByKind(event.KindLowStockWarning),
		"seis ventas consecutivas, una sola advertencia")

	require.NoError(t, d.Publish(event.NewRefill("001", 10)))
	assert.Equal(t, 1, rec.countByKind(event.KindStockOk))

	// Episodio nuevo: la advertencia vuelve a estar disponible.
	for i := 0; i < 4; i++ {
		require.NoError(t, d.Publish(event.NewSale("001", 2)))
	}
	assert.Equal(t, 2, rec.countByKind(event.KindLowStockWarning),
		"tras el restablecimiento el episodio siguiente notifica otra vez")
}

func TestSaleHandler_IgnoraOtrosKinds(t *testing.T) {
	machines := memory.NewMachineRepository()
	require.NoError(t, machines.Save(entity.NewMachine("001")))
	d := pubsub.NewDispatcher()
	h := handlers.NewSaleHandler(machines, d, logger.Nop())

	// El handler discrimina por el tag del evento, no por identidad dinámica.
	require.NoError(t, h.Handle(event.NewRefill("001", 5)))
	assert.Equal(t, entity.InitialStockLevel, mustStock(t, machines, "001"),
		"un kind ajeno no debe tocar el stock")
}

func TestRefillHandler_MaquinaDesconocida(t *testing.T) {
	machines := memory.NewMachineRepository()
	d := pubsub.NewDispatcher()
	h := handlers.NewRefillHandler(machines, d, logger.Nop())

	assert.NoError(t, h.Handle(event.NewRefill("999", 5)),
		"una máquina desconocida se absorbe en silencio, no es un error")
}
