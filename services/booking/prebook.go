package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stayhub/gds"
	"stayhub/models"
	"stayhub/utils"

	"go.uber.org/zap"
)

// PrebookCoordinator places temporary holds on booking codes.
type PrebookCoordinator interface {
	Hold(ctx context.Context, bookingCode string) (*models.PrebookHold, error)
}

// DefaultPrebookCoordinator implements PrebookCoordinator against the
// provider's prebook endpoint.
type DefaultPrebookCoordinator struct {
	GDS    *gds.Client
	Logger *zap.Logger
}

// Hold runs the prebook state machine: the hold is Pending once the request
// is sent and settles as Confirmed or Rejected. A confirmed hold carries
// the provider's quoted total and a 24-hour expiry; the expiry is
// communicated to the caller but not enforced locally — the provider
// rejects a stale finalize on its own. A rejected hold is terminal: the
// caller must resolve a fresh booking code rather than retry the same one.
func (c *DefaultPrebookCoordinator) Hold(ctx context.Context, bookingCode string) (*models.PrebookHold, error) {
	if bookingCode == "" {
		return nil, fmt.Errorf("booking code is required")
	}

	hold := &models.PrebookHold{
		BookingCode: bookingCode,
		Status:      models.HoldPending,
	}

	resp, err := c.GDS.Prebook(ctx, bookingCode, "Limit")
	if err != nil {
		var statusErr *gds.StatusError
		if errors.As(err, &statusErr) {
			// Non-200 from the provider: terminal rejection, not retryable.
			hold.Status = models.HoldRejected
			hold.StatusReason = statusErr.Body
			c.Logger.Warn("prebook hold rejected",
				zap.String("bookingCode", bookingCode),
				zap.Int("status", statusErr.HTTPStatus))
			return hold, ErrHoldRejected
		}
		return nil, fmt.Errorf("prebook request failed: %w", err)
	}

	if string(resp.Status.Code) != gds.CodeSuccess {
		hold.Status = models.HoldRejected
		hold.StatusReason = resp.Status.Text()
		c.Logger.Warn("prebook hold rejected",
			zap.String("bookingCode", bookingCode),
			zap.String("code", string(resp.Status.Code)),
			zap.String("reason", hold.StatusReason))
		return hold, ErrHoldRejected
	}

	hold.Status = models.HoldConfirmed
	hold.BookingReference = resp.BookingReference
	if resp.TotalAmount != nil {
		hold.TotalAmount = float64(*resp.TotalAmount)
	}
	hold.Currency = resp.Currency
	hold.ExpiresAt = time.Now().Add(utils.HoldExpiry)

	c.Logger.Info("prebook hold confirmed",
		zap.String("bookingCode", bookingCode),
		zap.Float64("totalAmount", hold.TotalAmount),
		zap.String("currency", hold.Currency))
	return hold, nil
}
