package sms

import (
	"context"
	"fmt"
	"strings"

	"github.com/rigparts/storefront/internal/domain"
	"github.com/rigparts/storefront/internal/pkg/logger"
)

// Sender is the outbound messaging contract. *Client satisfies it; tests
// substitute fakes.
type Sender interface {
	Send(ctx context.Context, msg Message) (*SendResult, error)
}

// Notifier formats order and quote notifications and texts them to the
// operator number.
type Notifier struct {
	sender Sender
	from   string
	notify string
}

// NewNotifier creates a notifier sending from `from` to the operator
// number `notify`.
func NewNotifier(sender Sender, from, notify string) *Notifier {
	return &Notifier{sender: sender, from: from, notify: notify}
}

// NotifyOrder texts an order summary to the operator.
func (n *Notifier) NotifyOrder(ctx context.Context, o *domain.OrderNotification) error {
	var b strings.Builder
	fmt.Fprintf(&b, "New order %s from %s", o.OrderID, o.CustomerName)
	if o.CustomerPhone != "" {
		fmt.Fprintf(&b, " (%s)", o.CustomerPhone)
	}
	fmt.Fprintf(&b, ": %d item(s), total $%.2f", len(o.Items), float64(o.TotalCents)/100)
	for i, item := range o.Items {
		if i == 3 {
			fmt.Fprintf(&b, ", +%d more", len(o.Items)-i)
			break
		}
		fmt.Fprintf(&b, "; %dx %s", item.Quantity, item.Name)
	}

	return n.send(ctx, b.String(), "order", o.OrderID)
}

// NotifyQuote texts a quote request to the operator.
func (n *Notifier) NotifyQuote(ctx context.Context, q *domain.QuoteNotification) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Quote request from %s", q.CustomerName)
	if q.CustomerPhone != "" {
		fmt.Fprintf(&b, " (%s)", q.CustomerPhone)
	}
	part := q.PartName
	if part == "" {
		part = q.PartID
	}
	fmt.Fprintf(&b, " for %s", part)
	if q.Quantity > 1 {
		fmt.Fprintf(&b, " x%d", q.Quantity)
	}
	if q.Message != "" {
		msg := q.Message
		if len(msg) > 120 {
			msg = msg[:120] + "..."
		}
		fmt.Fprintf(&b, ": %s", msg)
	}

	return n.send(ctx, b.String(), "quote", q.PartID)
}

func (n *Notifier) send(ctx context.Context, body, kind, ref string) error {
	result, err := n.sender.Send(ctx, Message{To: n.notify, From: n.from, Body: body})
	if err != nil {
		logger.Error("notification send failed", "kind", kind, "ref", ref, "err", err)
		return err
	}
	logger.Info("notification sent", "kind", kind, "ref", ref, "sid", result.SID)
	return nil
}
