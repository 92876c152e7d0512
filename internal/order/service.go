package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

var ErrEmptyCart = errors.New("cart is empty")

// Notifier delivers the order confirmation. Implementations must never
// fail the order: the boolean only reports whether delivery happened.
type Notifier interface {
	SendOrderConfirmation(ctx context.Context, summary *Summary) bool
}

type Service interface {
	Create(ctx context.Context, input *CreateInput) (int64, error)
	GetSummary(ctx context.Context, id int64) (*Summary, error)
}

type service struct {
	repo     Repository
	notifier Notifier
}

func NewService(repo Repository, notifier Notifier) Service {
	return &service{repo: repo, notifier: notifier}
}

// Create validates the cart, persists it atomically and fires the
// best-effort confirmation email. Validation failures short-circuit before
// any write; the notifier outcome never affects the result.
func (s *service) Create(ctx context.Context, input *CreateInput) (int64, error) {
	if len(input.Items) == 0 {
		log.Warn().Msg("service: attempt to create order with no items")
		return 0, ErrEmptyCart
	}

	orderID, err := s.repo.Create(ctx, input)
	if err != nil {
		if errors.Is(err, ErrUnknownProduct) || errors.Is(err, ErrInvalidQuantity) {
			return 0, err
		}
		log.Error().Err(err).Msg("service: failed to create order in repository")
		return 0, fmt.Errorf("service: failed to create order: %w", err)
	}

	log.Info().Int64("order_id", orderID).Str("customer", input.CustomerName).Msg("service: order created")

	s.notify(ctx, orderID)

	return orderID, nil
}

func (s *service) notify(ctx context.Context, orderID int64) {
	if s.notifier == nil {
		return
	}

	summary, err := s.repo.GetSummary(ctx, orderID)
	if err != nil {
		log.Error().Err(err).Int64("order_id", orderID).Msg("service: failed to load summary for confirmation email")
		return
	}

	delivered := s.notifier.SendOrderConfirmation(ctx, summary)
	log.Debug().Int64("order_id", orderID).Bool("delivered", delivered).Msg("service: confirmation email attempted")
}

func (s *service) GetSummary(ctx context.Context, id int64) (*Summary, error) {
	summary, err := s.repo.GetSummary(ctx, id)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		log.Error().Err(err).Int64("order_id", id).Msg("service: failed to fetch order summary")
		return nil, fmt.Errorf("service: failed to fetch order summary: %w", err)
	}

	return summary, nil
}
