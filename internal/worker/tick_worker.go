package worker

import (
	"context"
	"errors"
	"time"

	"github.com/cadencehq/cadence-server/internal/domain"
	"github.com/cadencehq/cadence-server/internal/engine"
	"github.com/cadencehq/cadence-server/internal/logger"
	"github.com/cadencehq/cadence-server/internal/metrics"
)

// TickJob advances the simulation one tick: it settles elapsed activity
// time, pays due salaries and executes due gigs.
type TickJob struct {
	engine *engine.Engine
}

func NewTickJob(eng *engine.Engine) *TickJob {
	return &TickJob{engine: eng}
}

func (j *TickJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)

	start := time.Now()
	result, err := j.engine.Tick(ctx)
	if err != nil {
		// No loaded game just means nobody is playing yet.
		if errors.Is(err, domain.ErrPlayerNotFound) {
			log.Debug(LogMsgTickSkipped)
			return nil
		}
		metrics.OperationErrors.WithLabelValues("tick").Inc()
		log.Error(LogMsgTickFailed, "error", err)
		return err
	}

	metrics.TicksTotal.Inc()
	metrics.TickDuration.Observe(time.Since(start).Seconds())
	metrics.PaymentsSettled.Add(float64(result.PaymentsSettled))
	metrics.GigsExecuted.Add(float64(result.GigsExecuted))

	log.Debug(LogMsgTickCompleted,
		"slots_processed", result.SlotsProcessed,
		"payments_settled", result.PaymentsSettled,
		"total_paid", result.TotalPaid,
		"gigs_executed", result.GigsExecuted)

	return nil
}
