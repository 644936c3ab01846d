package jobs

import (
	"context"
	"log/slog"

	"ceaseletter/internal/core/application/usecases/commands"
	"ceaseletter/internal/core/domain/model/order"
	"ceaseletter/internal/core/ports"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentDispatches bounds how many letters go to the carrier at once.
const maxConcurrentDispatches = 4

// DispatchLettersJob periodically drains queued orders through the mail
// carrier. The send endpoint normally dispatches synchronously; this job is
// the safety net for orders left in queued by a crash or carrier outage.
// Every drained order ends in exactly one of sent or failed.
type DispatchLettersJob struct {
	orderRepo       ports.OrderRepository
	carrier         ports.MailCarrier
	markSentHandler commands.MarkOrderSentCommandHandler
	failHandler     commands.FailOrderCommandHandler
	cron            *cron.Cron
	logger          *slog.Logger
}

// NewDispatchLettersJob creates the dispatch job. It reads pending orders
// through the repository and records outcomes through the command handlers.
func NewDispatchLettersJob(
	orderRepo ports.OrderRepository,
	carrier ports.MailCarrier,
	markSentHandler commands.MarkOrderSentCommandHandler,
	failHandler commands.FailOrderCommandHandler,
	logger *slog.Logger,
) *DispatchLettersJob {
	return &DispatchLettersJob{
		orderRepo:       orderRepo,
		carrier:         carrier,
		markSentHandler: markSentHandler,
		failHandler:     failHandler,
		cron:            cron.New(cron.WithSeconds()),
		logger:          logger.With("component", "dispatch_letters_job"),
	}
}

// Start begins the dispatch job to run every 30 seconds.
func (j *DispatchLettersJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		if err := j.DispatchPending(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Letter dispatch sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Letter dispatch job started (running every 30 seconds)")
	return nil
}

// Stop stops the dispatch job.
func (j *DispatchLettersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Letter dispatch job stopped")
}

// DispatchPending drains every queued order, oldest first, with bounded
// concurrency. A carrier rejection fails that one order and the sweep keeps
// going; only infrastructure errors come back to the caller.
func (j *DispatchLettersJob) DispatchPending(ctx context.Context) error {
	orders, err := j.orderRepo.GetAllInStatus(ctx, order.Queued)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentDispatches)

	for _, o := range orders {
		g.Go(func() error {
			return j.dispatchOne(ctx, o)
		})
	}

	return g.Wait()
}

func (j *DispatchLettersJob) dispatchOne(ctx context.Context, o *order.Order) error {
	dispatch, sendErr := j.carrier.SendLetter(ctx, ports.DispatchRequest{
		OrderID:    o.ID(),
		Form:       o.Form(),
		LetterText: o.LetterText(),
	})
	if sendErr != nil {
		j.logger.WarnContext(ctx, "Carrier rejected letter",
			"orderId", o.ID().String(), "error", sendErr)
		return j.recordFailure(ctx, o, sendErr.Error())
	}

	cmd, err := commands.NewMarkOrderSentCommand(
		o.ID(), dispatch.TrackingNumber, dispatch.LetterID, dispatch.MailingID,
	)
	if err != nil {
		return err
	}
	if err = j.markSentHandler.Handle(ctx, cmd); err != nil {
		return err
	}

	j.logger.InfoContext(ctx, "Letter dispatched",
		"orderId", o.ID().String(), "trackingNumber", dispatch.TrackingNumber)
	return nil
}

func (j *DispatchLettersJob) recordFailure(ctx context.Context, o *order.Order, message string) error {
	cmd, err := commands.NewFailOrderCommand(o.ID(), message)
	if err != nil {
		return err
	}
	return j.failHandler.Handle(ctx, cmd)
}
