package app

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"

	"github.com/leng404/gymshop/internal/checkout/domain"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
	ErrCancelled = errors.New("checkout cancelled")
)

// State of the checkout flow.
type State int

const (
	StateIdle State = iota
	StateAwaitingConfirmation
	StateCompleted
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingConfirmation:
		return "awaiting_confirmation"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Service runs the checkout flow:
// Idle -> AwaitingConfirmation -> Completed | Cancelled.
type Service struct {
	cart   Cart
	notify Notifier

	state State
}

func NewService(cart Cart, notify Notifier) *Service {
	return &Service{
		cart:   cart,
		notify: notify,
		state:  StateIdle,
	}
}

func (s *Service) State() State {
	return s.state
}

// Checkout validates the cart, asks for confirmation and, when
// confirmed, clears the cart. The returned receipt is snapshotted
// before clearing. An empty cart fails without ever prompting; a
// declined prompt leaves the cart untouched. The confirmer is passed
// per call because the answer arrives with the triggering request.
func (s *Service) Checkout(ctx context.Context, confirm Confirmer) (domain.Receipt, error) {
	s.state = StateIdle

	count := s.cart.ItemCount()
	if count == 0 {
		s.notify.Notify(NotifyError, "Oops...", "Your cart is empty.")
		return domain.Receipt{}, ErrEmptyCart
	}

	receipt := domain.Receipt{
		ItemCount: count,
		Subtotal:  s.cart.Subtotal(),
	}

	s.state = StateAwaitingConfirmation
	body := fmt.Sprintf("Items: %d, Subtotal: $%s", receipt.ItemCount, receipt.Subtotal.StringFixed(2))

	ok, err := confirm.Confirm(ctx, "Place order?", body)
	if err != nil {
		s.state = StateCancelled
		return domain.Receipt{}, errors.Wrap(err, "confirm order")
	}
	if !ok {
		s.state = StateCancelled
		return domain.Receipt{}, ErrCancelled
	}

	s.cart.Clear()
	s.state = StateCompleted
	s.notify.Notify(NotifySuccess, "Order placed", "Thank you for your purchase!")
	return receipt, nil
}
