package sms

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rigparts/storefront/internal/domain"
)

type fakeSender struct {
	sent []Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg Message) (*SendResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, msg)
	return &SendResult{SID: "SM1", Status: "queued"}, nil
}

func TestNotifyOrder(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(sender, "+15550001111", "+15550002222")

	err := n.NotifyOrder(context.Background(), &domain.OrderNotification{
		OrderID:      "ord-9",
		CustomerName: "Dale",
		TotalCents:   24999,
		Items: []domain.OrderItem{
			{PartID: "part42", Name: "Brake Drum", Quantity: 2},
		},
	})
	if err != nil {
		t.Fatalf("NotifyOrder: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(sender.sent))
	}
	msg := sender.sent[0]
	if msg.To != "+15550002222" {
		t.Errorf("To = %q", msg.To)
	}
	if !strings.Contains(msg.Body, "ord-9") || !strings.Contains(msg.Body, "$249.99") {
		t.Errorf("Body = %q", msg.Body)
	}
	if !strings.Contains(msg.Body, "2x Brake Drum") {
		t.Errorf("Body missing item line: %q", msg.Body)
	}
}

func TestNotifyOrderTruncatesItems(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(sender, "+1", "+2")

	items := make([]domain.OrderItem, 6)
	for i := range items {
		items[i] = domain.OrderItem{Name: "Part", Quantity: 1}
	}
	if err := n.NotifyOrder(context.Background(), &domain.OrderNotification{
		OrderID: "o", CustomerName: "C", Items: items,
	}); err != nil {
		t.Fatalf("NotifyOrder: %v", err)
	}
	if !strings.Contains(sender.sent[0].Body, "+3 more") {
		t.Errorf("Body = %q, want item truncation", sender.sent[0].Body)
	}
}

func TestNotifyQuote(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(sender, "+15550001111", "+15550002222")

	err := n.NotifyQuote(context.Background(), &domain.QuoteNotification{
		CustomerName:  "Dale",
		CustomerPhone: "+15559998888",
		PartID:        "part42",
		PartName:      "Brake Drum",
		Quantity:      4,
		Message:       "Need these by Friday",
	})
	if err != nil {
		t.Fatalf("NotifyQuote: %v", err)
	}
	body := sender.sent[0].Body
	if !strings.Contains(body, "Brake Drum x4") {
		t.Errorf("Body = %q", body)
	}
	if !strings.Contains(body, "Need these by Friday") {
		t.Errorf("Body missing customer message: %q", body)
	}
}

func TestNotifyFailurePropagates(t *testing.T) {
	sender := &fakeSender{err: errors.New("provider down")}
	n := NewNotifier(sender, "+1", "+2")

	err := n.NotifyQuote(context.Background(), &domain.QuoteNotification{
		CustomerName: "Dale", PartID: "part42",
	})
	if err == nil {
		t.Fatal("expected error")
	}
}
