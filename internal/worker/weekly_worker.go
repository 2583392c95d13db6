package worker

import (
	"context"
	"errors"

	"github.com/cadencehq/cadence-server/internal/domain"
	"github.com/cadencehq/cadence-server/internal/engine"
	"github.com/cadencehq/cadence-server/internal/logger"
	"github.com/cadencehq/cadence-server/internal/metrics"
)

// WeeklyJob runs the slow periodic passes: streaming revenue for published
// releases and housing rent upkeep.
type WeeklyJob struct {
	engine *engine.Engine
}

func NewWeeklyJob(eng *engine.Engine) *WeeklyJob {
	return &WeeklyJob{engine: eng}
}

func (j *WeeklyJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)

	streaming, err := j.engine.ProcessWeeklyStreaming(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrPlayerNotFound) {
			log.Debug(LogMsgTickSkipped)
			return nil
		}
		metrics.OperationErrors.WithLabelValues("weekly_streaming").Inc()
		log.Error(LogMsgStreamingFailed, "error", err)
		return err
	}
	metrics.StreamingPasses.Inc()

	upkeep, err := j.engine.ProcessHousingUpkeep(ctx)
	if err != nil {
		metrics.OperationErrors.WithLabelValues("housing_upkeep").Inc()
		log.Error(LogMsgUpkeepFailed, "error", err)
		return err
	}
	metrics.HousingUpkeepPasses.Inc()

	log.Info(LogMsgWeeklyPassCompleted,
		"releases_processed", streaming.ReleasesProcessed,
		"total_plays", streaming.TotalPlays,
		"total_revenue", streaming.TotalRevenue,
		"rent_paid", upkeep.RentPaid,
		"forced_downgrade", upkeep.ForcedDowngrade)

	return nil
}
