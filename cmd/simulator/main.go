package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/vending-fleet/internal/application/handlers"
	"github.com/jhoicas/vending-fleet/internal/domain/entity"
	"github.com/jhoicas/vending-fleet/internal/domain/event"
	"github.com/jhoicas/vending-fleet/internal/infrastructure/memory"
	"github.com/jhoicas/vending-fleet/internal/infrastructure/source"
	"github.com/jhoicas/vending-fleet/internal/interfaces/notifier"
	"github.com/jhoicas/vending-fleet/internal/pubsub"
	"github.com/jhoicas/vending-fleet/pkg/config"
	"github.com/jhoicas/vending-fleet/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando simulación de la flota")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Identidad fija de la flota: se crea una vez y no cambia durante la corrida.
	machines := memory.NewMachineRepository()
	for _, id := range cfg.Sim.MachineIDs {
		if err := machines.Save(entity.NewMachine(id)); err != nil {
			log.Fatal().Err(err).Str("machine_id", id).Msg("registrar máquina")
		}
	}

	dispatcher := pubsub.NewDispatcher()
	dispatcher.Subscribe(event.KindSale, handlers.NewSaleHandler(machines, dispatcher, log))
	dispatcher.Subscribe(event.KindRefill, handlers.NewRefillHandler(machines, dispatcher, log))

	stockNotifier := notifier.NewLogNotifier(log)
	dispatcher.Subscribe(event.KindLowStockWarning, stockNotifier)
	dispatcher.Subscribe(event.KindStockOk, stockNotifier)

	src := source.NewRandomSource(
		dispatcher,
		cfg.Sim.MachineIDs,
		cfg.Sim.Seed,
		cfg.Sim.MaxQuantity,
		time.Duration(cfg.Sim.IntervalMs)*time.Millisecond,
	)
	if err := src.Run(ctx, cfg.Sim.EventCount); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("la entrega de eventos falló")
	}

	for _, m := range machines.All() {
		log.Info().
			Str("machine_id", m.ID()).
			Int("stock_level", m.StockLevel()).
			Msg("estado final de la máquina")
	}
	log.Info().Msg("simulación terminada")
}
