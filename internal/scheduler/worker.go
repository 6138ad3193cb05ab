package scheduler

import (
	"context"
	"fmt"

	"avialeads_backend/internal/scoring/service"
	"avialeads_backend/platform/apperr"
	"avialeads_backend/platform/config"
	"avialeads_backend/platform/logger"

	"github.com/hibiken/asynq"
)

type Worker struct {
	server  *asynq.Server
	mux     *asynq.ServeMux
	scoring *service.Service
	log     *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, scoring *service.Service, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server:  server,
		mux:     mux,
		scoring: scoring,
		log:     log,
	}

	mux.HandleFunc(TaskLeadRescore, w.handleLeadRescore)

	return w, nil
}

func (w *Worker) handleLeadRescore(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseLeadRescorePayload(task)
	if err != nil {
		return err
	}

	if _, err := w.scoring.CalculateScore(ctx, payload.UserID); err != nil {
		// The profile may have never been persisted; nothing to retry.
		if apperr.GetKind(err) == apperr.KindNotFound {
			w.log.Warn("rescore skipped, profile gone", "lead_id", payload.UserID)
			return nil
		}
		return err
	}

	return nil
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}
