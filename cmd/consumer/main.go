package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/merchkit/ordertags/internal/config"
	"github.com/merchkit/ordertags/internal/logger"
)

const groupID = "audit-log-consumer-group"

// Tails the audit topic and logs every entry. Useful for watching what
// the admin app and the webhook stream are doing to orders.
func main() {
	log := logger.New()
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()
	if len(cfg.KafkaBrokers) == 0 {
		zap.S().Fatal("KAFKA_BROKERS is not set")
	}

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.KafkaBrokers,
		GroupID:        groupID,
		Topic:          cfg.AuditTopic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	defer func() {
		if err := r.Close(); err != nil {
			zap.S().Errorf("Error closing Kafka reader: %v", err)
		}
	}()

	zap.S().Infof("Consumer connected to topic %q on brokers %v", cfg.AuditTopic, cfg.KafkaBrokers)

	for {
		select {
		case <-ctx.Done():
			zap.S().Info("Shutdown signal received, stopping consumer")
			return
		default:
			m, err := r.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				zap.S().Errorf("Error reading message: %v", err)
				time.Sleep(5 * time.Second)
				continue
			}
			zap.S().Infof("audit %s: %s", m.Key, m.Value)
		}
	}
}
