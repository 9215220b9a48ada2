// Package notify delivers short text notifications to participants.
package notify

import (
	"context"
	"errors"
)

var ErrUnknownRecipient = errors.New("unknown notification recipient")

// Message is one notification addressed to a participant.
type Message struct {
	Recipient string
	Subject   string
	Text      string
}

// Notifier sends a message over one channel.
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

type multi []Notifier

// Multi fans a message out to every notifier and joins their errors.
func Multi(ns ...Notifier) Notifier {
	return multi(ns)
}

func (m multi) Notify(ctx context.Context, msg Message) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
