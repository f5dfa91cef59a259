package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/IBM/sarama"

	"github.com/gometeo/citydash/internal/config"
	"github.com/gometeo/citydash/internal/events"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	logger.Info("Starting lookup auditor...")

	cfg, err := config.Load(context.Background())
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if !cfg.EventsEnabled() {
		logger.Error("KAFKA_BROKERS is not set, nothing to audit")
		os.Exit(1)
	}

	// 1. Kafka consumer group
	saramaCfg := sarama.NewConfig()
	saramaCfg.Consumer.Return.Errors = true
	saramaCfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	consumer, err := sarama.NewConsumerGroup(cfg.KafkaBrokers, cfg.KafkaGroup, saramaCfg)
	if err != nil {
		logger.Error("Failed to create Kafka consumer", "error", err)
		os.Exit(1)
	}

	// 2. Consume loop
	ctx, cancel := context.WithCancel(context.Background())
	tally := events.NewTally()
	wg := &sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		handler := events.NewConsumerHandler(logger, tally)
		for {
			if err := consumer.Consume(ctx, []string{cfg.KafkaTopic}, handler); err != nil {
				logger.Error("Error while reading from Kafka", "error", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	go func() {
		defer wg.Done()
		for err := range consumer.Errors() {
			logger.Error("Consumer group error", "error", err)
		}
	}()

	logger.Info("Auditing lookups", "topic", cfg.KafkaTopic, "group", cfg.KafkaGroup)

	// 3. Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Stopping auditor...")
	cancel()
	if err := consumer.Close(); err != nil {
		logger.Error("Failed to close consumer", "error", err)
	}
	wg.Wait()
	logger.Info("Lookup tally", tally.LogArgs()...)
}
