package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/DuDupedrosa/krt-bank/internal/card"
	"github.com/DuDupedrosa/krt-bank/internal/config"
	"github.com/DuDupedrosa/krt-bank/internal/events"
)

const subsystem = "card"

func main() {
	cfg := config.Load()
	svc := card.NewService()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// One durable queue per event type: this subsystem gets its own copy of
	// every account event, independent of other subscribers.
	consumers := []*events.ConsumerService{
		events.NewConsumerService(cfg.AMQPURL, subsystem, events.AccountCreated, svc.OnAccountCreated),
		events.NewConsumerService(cfg.AMQPURL, subsystem, events.AccountUpdated, svc.OnAccountUpdated),
		events.NewConsumerService(cfg.AMQPURL, subsystem, events.AccountDeleted, svc.OnAccountDeleted),
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, consumer := range consumers {
		consumer := consumer
		g.Go(func() error {
			return consumer.Start(ctx)
		})
	}

	log.Println("Card service listening for account events")
	if err := g.Wait(); err != nil && err != context.Canceled {
		log.Fatalf("Card service stopped: %v", err)
	}
	log.Println("Card service shut down")
}
