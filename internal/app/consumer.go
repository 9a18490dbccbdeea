package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"licitahub/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer tails the documento lifecycle topic and logs every event.
// It is the attachment point for notification channels (e-mail, chat)
// that alert on expiring documents.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		return fmt.Errorf("KAFKA_BROKERS is required")
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     strings.Split(brokers, ","),
		Topic:       events.DocumentoLifecycleTopic,
		GroupID:     "licitahub-alertas",
		StartOffset: kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumeDocumentoLifecycle(ctx, reader, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}

func consumeDocumentoLifecycle(ctx context.Context, reader *kafkago.Reader, logger *zap.Logger) {
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return
			}
			logger.Error("fetch message failed", zap.Error(err))
			continue
		}

		var event events.DocumentoLifecycleEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			// A poison message is logged and skipped, never retried.
			logger.Warn("malformed lifecycle event",
				zap.String("key", string(msg.Key)),
				zap.Error(err),
			)
		} else {
			logger.Info("documento lifecycle event",
				zap.String("event_type", event.EventType),
				zap.String("documento_id", event.DocumentoID),
				zap.String("empresa_id", event.EmpresaID),
				zap.String("tipo", event.Tipo),
				zap.String("status", event.Status),
				zap.String("data_validade", event.DataValidade),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			logger.Error("commit message failed", zap.Error(err))
		}
	}
}
