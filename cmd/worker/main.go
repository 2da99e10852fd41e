package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os/signal"
	"syscall"
	"time"

	"techblog/configs"
	"techblog/configs/database"
	kafkaadapter "techblog/internal/adapters/kafka"
	"techblog/internal/apperr"
	"techblog/internal/ports/models"
	"techblog/internal/server/repository"
	"techblog/internal/server/service"

	"github.com/segmentio/kafka-go"
)

const (
	applyBaseDelay = time.Second
	applyMaxDelay  = 30 * time.Second
)

type transitionApplier interface {
	ApplyTransition(ctx context.Context, msg models.VoteTransitionMessage) error
}

// applyWithRetry retries storage failures in place with exponential
// backoff. The group reader advances its offset in-process, so a skipped
// message would never be refetched and committing any later one moves
// the group offset past it; the only safe recovery is to keep retrying
// the same message until the store comes back or the worker stops.
// Non-retryable errors are returned immediately.
func applyWithRetry(ctx context.Context, svc transitionApplier, msg models.VoteTransitionMessage, baseDelay time.Duration) error {
	delay := baseDelay
	for {
		err := svc.ApplyTransition(ctx, msg)
		if err == nil || !apperr.Retryable(err) {
			return err
		}
		log.Printf("Storage failure applying transition for %s %s, retrying in %s: %v",
			msg.TargetType, msg.TargetID, delay, err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		if delay < applyMaxDelay {
			delay *= 2
			if delay > applyMaxDelay {
				delay = applyMaxDelay
			}
		}
	}
}

// The reputation worker consumes vote transitions and applies ledger
// rules. A malformed or invalid message is logged and committed; a
// storage failure is retried in place before the next fetch.
func main() {
	cfg := configs.Load()

	mysqlDB, err := database.NewMySQLConnection(cfg.MySQLUser, cfg.MySQLPassword, cfg.MySQLHost, cfg.MySQLPort, cfg.MySQLDB)
	if err != nil {
		log.Fatalf("Failed to connect to MySQL: %v", err)
	}

	redisClient, err := database.InitRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	userRepo := repository.NewUserRepository(mysqlDB)
	reputationRepo := repository.NewReputationRepository(mysqlDB)
	capStore := repository.NewRedisCapStore(redisClient)
	reputationService := service.NewReputationService(userRepo, reputationRepo, capStore)

	reader := kafkaadapter.NewTransitionReader(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaGroupID)
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("Reputation worker consuming from %s", cfg.KafkaTopic)

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				log.Println("Reputation worker shutting down")
				return
			}
			log.Printf("Fetch error: %v", err)
			continue
		}

		var transition models.VoteTransitionMessage
		if err := json.Unmarshal(msg.Value, &transition); err != nil {
			log.Printf("Dropping malformed transition message: %v", err)
			commit(ctx, reader, msg)
			continue
		}

		if err := applyWithRetry(ctx, reputationService, transition, applyBaseDelay); err != nil {
			if ctx.Err() != nil {
				// Shutdown mid-retry: leave the message uncommitted for
				// the next worker instance.
				log.Println("Reputation worker shutting down")
				return
			}
			log.Printf("Dropping invalid transition for %s %s: %v", transition.TargetType, transition.TargetID, err)
		}
		commit(ctx, reader, msg)
	}
}

func commit(ctx context.Context, reader *kafka.Reader, msg kafka.Message) {
	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Printf("Commit error: %v", err)
	}
}
