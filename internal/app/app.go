package app

import (
	"os"
	"strings"

	"licitahub/internal/documento"
	"licitahub/internal/empresa"
	"licitahub/internal/licitacao"
	"licitahub/internal/shared/connection"
	"licitahub/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	if err := gormDB.AutoMigrate(
		&empresa.Empresa{},
		&documento.Documento{},
		&licitacao.Licitacao{},
	); err != nil {
		return err
	}

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	store := storage.NewDisk(uploadDir)

	// Lifecycle events are optional: without brokers configured the
	// publisher is a noop and the API runs standalone.
	publisher := documento.NewNoopEventPublisher()
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		writer := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(brokers, ",")...),
			Balancer: &kafka.LeastBytes{},
		}
		publisher = documento.NewKafkaEventPublisher(writer)
		zap.L().Info("kafka lifecycle publisher enabled", zap.String("brokers", brokers))
	}

	return registerModules(router, registryDeps{
		db:        db,
		gormDB:    gormDB,
		rdb:       rdb,
		store:     store,
		publisher: publisher,
	})
}
