package jobs

import (
	"context"
	"log/slog"

	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// PendingOrdersJob periodically reports the vendor queue depth. Runs every
// minute and logs how many orders sit in Pending and how many are Ready and
// waiting to be picked up.
type PendingOrdersJob struct {
	orderRepo ports.OrderRepository
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewPendingOrdersJob creates a job that watches the order queue.
func NewPendingOrdersJob(orderRepo ports.OrderRepository, logger *slog.Logger) *PendingOrdersJob {
	return &PendingOrdersJob{
		orderRepo: orderRepo,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "pending_orders_job"),
	}
}

// Start begins the queue report job, running at the top of every minute.
func (j *PendingOrdersJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		orders, err := j.orderRepo.GetAll(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending orders job failed", "error", err)
			return
		}

		var pending, ready int
		for _, o := range orders {
			switch o.Status() {
			case order.Pending:
				pending++
			case order.Ready:
				ready++
			}
		}

		if pending == 0 && ready == 0 {
			return
		}

		j.logger.InfoContext(ctx, "Order queue report",
			"pending", pending,
			"ready", ready,
			"total", len(orders),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending orders job started (running every minute)")
	return nil
}

// Stop stops the queue report job.
func (j *PendingOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending orders job stopped")
}
