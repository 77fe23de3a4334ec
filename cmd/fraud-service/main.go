package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/DuDupedrosa/krt-bank/internal/config"
	"github.com/DuDupedrosa/krt-bank/internal/events"
	"github.com/DuDupedrosa/krt-bank/internal/fraud"
)

const subsystem = "fraud"

func main() {
	cfg := config.Load()
	svc := fraud.NewService()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

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

	log.Println("Fraud prevention service listening for account events")
	if err := g.Wait(); err != nil && err != context.Canceled {
		log.Fatalf("Fraud prevention service stopped: %v", err)
	}
	log.Println("Fraud prevention service shut down")
}
