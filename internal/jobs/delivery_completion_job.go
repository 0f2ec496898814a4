package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// DeliveryCompletionJob moves shipped orders to completed once the courier
// has reported the parcel as delivered. Runs every 30 seconds.
type DeliveryCompletionJob struct {
	deliveredOrders   queries.GetDeliveredOrdersQueryHandler
	transitionHandler commands.TransitionOrderCommandHandler
	cron              *cron.Cron
	logger            *slog.Logger
}

// NewDeliveryCompletionJob creates a new job for completing delivered orders.
func NewDeliveryCompletionJob(
	deliveredOrders queries.GetDeliveredOrdersQueryHandler,
	transitionHandler commands.TransitionOrderCommandHandler,
	logger *slog.Logger,
) *DeliveryCompletionJob {
	return &DeliveryCompletionJob{
		deliveredOrders:   deliveredOrders,
		transitionHandler: transitionHandler,
		cron:              cron.New(),
		logger:            logger.With("component", "delivery_completion_job"),
	}
}

// Start begins the delivery completion job to run every 30 seconds.
func (j *DeliveryCompletionJob) Start() error {
	_, err := j.cron.AddFunc("@every 30s", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery completion job started (running every 30 seconds)")
	return nil
}

// Stop stops the delivery completion job.
func (j *DeliveryCompletionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery completion job stopped")
}

func (j *DeliveryCompletionJob) run() {
	ctx := context.Background()

	delivered, err := j.deliveredOrders.Handle(ctx, queries.NewGetDeliveredOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Delivery completion job failed to query delivered orders", "error", err)
		return
	}

	for _, row := range delivered {
		cmd, cmdErr := commands.NewTransitionOrderCommand(row.ID, order.Completed, nil)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Delivery completion job built invalid command",
				"order_id", row.ID.String(), "error", cmdErr)
			continue
		}

		if _, handleErr := j.transitionHandler.Handle(ctx, cmd); handleErr != nil {
			// A concurrent writer or a cancellation between query and command
			// is an expected race; the next tick sees fresh state.
			if errors.Is(handleErr, errs.ErrConcurrencyConflict) ||
				errors.Is(handleErr, order.ErrInvalidTransition) {
				continue
			}
			j.logger.ErrorContext(ctx, "Delivery completion job failed to complete order",
				"order_id", row.ID.String(), "error", handleErr)
		}
	}
}
