package payment

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestMockProcessorApproves(t *testing.T) {
	p := NewMockProcessor(0)

	res, err := p.ProcessPayment(context.Background(), PaymentInput{Amount: 5000, UserID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Success || res.Status != StatusApproved || res.Amount != 5000 {
		t.Fatalf("unexpected result %+v", res)
	}
	if !strings.HasPrefix(res.PaymentID, "mock_payment_") {
		t.Fatalf("payment id = %q", res.PaymentID)
	}

	other, _ := p.ProcessPayment(context.Background(), PaymentInput{Amount: 5000})
	if other.PaymentID == res.PaymentID {
		t.Fatalf("payment ids must differ")
	}

	st, err := p.GetPaymentStatus(context.Background(), res.PaymentID)
	if err != nil || st.Status != StatusApproved || st.PaymentID != res.PaymentID {
		t.Fatalf("status = %+v err=%v", st, err)
	}
}

func TestMockProcessorHonoursContext(t *testing.T) {
	p := NewMockProcessor(time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := p.ProcessPayment(ctx, PaymentInput{Amount: 5000}); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
