package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	StatusApproved = "approved"
	MethodCard     = "credit_card"
)

type PaymentInput struct {
	Amount      int64
	Description string
	UserID      string
}

type PaymentResult struct {
	Success         bool      `json:"success"`
	PaymentID       string    `json:"payment_id"`
	Status          string    `json:"status"`
	Amount          int64     `json:"amount"`
	Method          string    `json:"payment_method"`
	TransactionDate time.Time `json:"transaction_date"`
}

type StatusResult struct {
	Success   bool   `json:"success"`
	Status    string `json:"status"`
	PaymentID string `json:"payment_id"`
}

// Processor charges the customer before an appointment is created.
type Processor interface {
	ProcessPayment(ctx context.Context, in PaymentInput) (*PaymentResult, error)
	GetPaymentStatus(ctx context.Context, paymentID string) (*StatusResult, error)
}

// MockProcessor approves every payment after Delay. It stands in for the
// real gateway until one is integrated.
type MockProcessor struct {
	Delay time.Duration
	now   func() time.Time
}

func NewMockProcessor(delay time.Duration) *MockProcessor {
	return &MockProcessor{Delay: delay, now: time.Now}
}

func (p *MockProcessor) ProcessPayment(ctx context.Context, in PaymentInput) (*PaymentResult, error) {
	if p.Delay > 0 {
		timer := time.NewTimer(p.Delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return &PaymentResult{
		Success:         true,
		PaymentID:       "mock_payment_" + uuid.NewString(),
		Status:          StatusApproved,
		Amount:          in.Amount,
		Method:          MethodCard,
		TransactionDate: p.now(),
	}, nil
}

func (p *MockProcessor) GetPaymentStatus(ctx context.Context, paymentID string) (*StatusResult, error) {
	return &StatusResult{
		Success:   true,
		Status:    StatusApproved,
		PaymentID: paymentID,
	}, nil
}

var _ Processor = (*MockProcessor)(nil)
