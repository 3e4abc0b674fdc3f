// Package integration holds the library operations that depend on the
// customer directory and mail collaborators.
package integration

import (
	"context"
	"fmt"

	log "github.com/golang/glog"

	"github.com/hdwhdw/testkit/pkg/db"
	"github.com/hdwhdw/testkit/pkg/mail"
	"github.com/hdwhdw/testkit/testpkg/pure"
)

const (
	// LoyaltyPointsThreshold is the point balance a customer must exceed to
	// receive the loyalty discount.
	LoyaltyPointsThreshold = 10
	// LoyaltyDiscountRate is the fraction taken off the order total.
	LoyaltyDiscountRate = 0.10

	// OrderPlacedMessage is the body sent by NotifyCustomer.
	OrderPlacedMessage = "Your order was placed successfully."
)

// Order is a customer order. ApplyDiscount mutates TotalPrice in place.
type Order struct {
	ID         int
	CustomerID int
	TotalPrice float64
}

// Shop runs order operations against a customer directory and a sender.
type Shop struct {
	directory db.Directory
	sender    mail.Sender
}

// NewShop returns a Shop bound to the given collaborators.
func NewShop(directory db.Directory, sender mail.Sender) *Shop {
	return &Shop{directory: directory, sender: sender}
}

// DefaultShop returns a Shop that resolves the process-wide default
// directory and sender on every call, so substitutions made with
// db.SetDefaultDirectory or mail.SetDefaultSender take effect immediately.
func DefaultShop() *Shop {
	return NewShop(db.DirectoryFunc(db.GetCustomerSync), mail.SenderFunc(mail.Send))
}

// customer fetches the ordering customer. A directory that reports neither
// a customer nor an error is treated as a miss.
func (s *Shop) customer(ctx context.Context, op string, id int) (*db.Customer, error) {
	if s.directory == nil {
		return nil, db.ErrNotInitialized
	}

	customer, err := s.directory.GetCustomer(ctx, id)
	if err != nil {
		log.Warningf("[%s] customer %d lookup failed: %v", op, id, err)
		return nil, err
	}
	if customer == nil {
		log.Warningf("[%s] customer %d lookup returned no customer", op, id)
		return nil, fmt.Errorf("customer %d: %w", id, db.ErrNotFound)
	}
	return customer, nil
}

// ApplyDiscount takes LoyaltyDiscountRate off the order total when the
// ordering customer holds more than LoyaltyPointsThreshold points.
// Directory errors are returned unchanged.
func (s *Shop) ApplyDiscount(ctx context.Context, order *Order) error {
	if order == nil {
		return &pure.ValidationError{Field: "order", Message: "order is required"}
	}

	customer, err := s.customer(ctx, "ApplyDiscount", order.CustomerID)
	if err != nil {
		return err
	}

	if customer.Points > LoyaltyPointsThreshold {
		before := order.TotalPrice
		order.TotalPrice *= 1 - LoyaltyDiscountRate
		log.V(1).Infof("[ApplyDiscount] order %d: %.2f -> %.2f (customer %d has %d points)",
			order.ID, before, order.TotalPrice, order.CustomerID, customer.Points)
		return nil
	}

	log.V(2).Infof("[ApplyDiscount] order %d: no discount, customer %d has %d points",
		order.ID, order.CustomerID, customer.Points)
	return nil
}

// NotifyCustomer tells the ordering customer that the order was placed.
// Exactly one message is sent on success. Lookup and send errors are
// returned unchanged; nothing is sent when the lookup fails.
func (s *Shop) NotifyCustomer(ctx context.Context, order *Order) error {
	if order == nil {
		return &pure.ValidationError{Field: "order", Message: "order is required"}
	}
	if s.sender == nil {
		return mail.ErrNotInitialized
	}

	customer, err := s.customer(ctx, "NotifyCustomer", order.CustomerID)
	if err != nil {
		return err
	}

	if err := s.sender.Send(ctx, customer.Email, OrderPlacedMessage); err != nil {
		log.Warningf("[NotifyCustomer] order %d: delivery to %s failed: %v", order.ID, customer.Email, err)
		return err
	}

	log.V(1).Infof("[NotifyCustomer] order %d: notified %s", order.ID, customer.Email)
	return nil
}

// ApplyDiscount runs Shop.ApplyDiscount against the default collaborators.
func ApplyDiscount(ctx context.Context, order *Order) error {
	return DefaultShop().ApplyDiscount(ctx, order)
}

// NotifyCustomer runs Shop.NotifyCustomer against the default collaborators.
func NotifyCustomer(ctx context.Context, order *Order) error {
	return DefaultShop().NotifyCustomer(ctx, order)
}
