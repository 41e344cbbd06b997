package jobs

import (
	"context"
	"log/slog"

	"orderservice/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrderStatsJob periodically logs order counts per status. It gives
// operators a heartbeat of how orders flow through the lifecycle without
// querying the database by hand.
type OrderStatsJob struct {
	handler  queries.GetOrdersSummaryQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderStatsJob creates a job that reports order statistics on the given
// cron schedule (six-field expression with seconds, e.g. "0 * * * * *").
func NewOrderStatsJob(
	handler queries.GetOrdersSummaryQueryHandler,
	schedule string,
	logger *slog.Logger,
) *OrderStatsJob {
	return &OrderStatsJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_stats_job"),
	}
}

// Start begins the order stats job on its configured schedule.
func (j *OrderStatsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		summary, err := j.handler.Handle(ctx, queries.NewGetOrdersSummaryQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Order stats job failed", "error", err)
			return
		}

		attrs := make([]any, 0, 2*len(summary.Counts)+2)
		attrs = append(attrs, "total", summary.Total)
		for _, sc := range summary.Counts {
			attrs = append(attrs, sc.Status, sc.Count)
		}
		j.logger.InfoContext(ctx, "Order stats", attrs...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order stats job started", "schedule", j.schedule)
	return nil
}

// Stop stops the order stats job.
func (j *OrderStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order stats job stopped")
}
