package workers

import (
	"context"
	"time"

	"unigig_backend/internal/logger"
	"unigig_backend/internal/repositories"
	"unigig_backend/internal/services"
)

// PopularityWorker периодически пересчитывает популярность всех
// пользователей. Онлайн-пересчёты после мутаций best-effort, так что
// фоновая сверка подтягивает счётчики, разъехавшиеся после сбоев.
type PopularityWorker struct {
	userRepo   repositories.UserRepository
	popularity *services.PopularityService
	interval   time.Duration
}

func NewPopularityWorker(userRepo repositories.UserRepository, popularity *services.PopularityService, interval time.Duration) *PopularityWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &PopularityWorker{userRepo: userRepo, popularity: popularity, interval: interval}
}

// Start запускает фоновую сверку счётчиков
func (w *PopularityWorker) Start(ctx context.Context) {
	go w.reconcileLoop(ctx)
}

func (w *PopularityWorker) reconcileLoop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("popularity worker stopped")
			return
		case <-ticker.C:
			w.reconcileAll(ctx)
		}
	}
}

func (w *PopularityWorker) reconcileAll(ctx context.Context) {
	ids, err := w.userRepo.ListIDs()
	if err != nil {
		logger.Warn("popularity reconcile: listing users failed", "error", err)
		return
	}

	var failed int
	for _, id := range ids {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if _, err := w.popularity.Recompute(id); err != nil {
			failed++
			logger.Warn("popularity reconcile failed for user", "user_id", id, "error", err)
		}
	}
	logger.Info("popularity reconcile pass complete", "users", len(ids), "failed", failed)
}
