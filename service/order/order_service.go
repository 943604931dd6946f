// Package order handles order intake: formatting the owner notification
// email, sending it over SMTP, and logging the submission.
package order

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"bazar.GO/cart"
	"bazar.GO/catalog"
	entity "bazar.GO/model/entity"
	orderRepo "bazar.GO/model/repository/order"
)

// Payload is the order submission body accepted by POST /send-email.
type Payload struct {
	Name    string      `json:"name"`
	Phone   string      `json:"phone"`
	Email   string      `json:"email"`
	Address string      `json:"address"`
	Message string      `json:"message"`
	Cart    []cart.Item `json:"cart"`
}

// Total sums price*quantity over the submitted cart.
func (p Payload) Total() float64 {
	var total float64
	for _, it := range p.Cart {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// taka renders a money amount in full decimal form; %g would flip large
// totals into scientific notation.
func taka(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatEmail renders the plaintext notification mail the shop owner
// receives: per-item lines with line totals, then the customer block.
func FormatEmail(p Payload) string {
	var b strings.Builder

	b.WriteString("New Order Received!\n\n")
	b.WriteString("Customer Details:\n")
	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	fmt.Fprintf(&b, "Phone: %s\n", p.Phone)
	fmt.Fprintf(&b, "Email: %s\n", orNA(p.Email))
	fmt.Fprintf(&b, "Address: %s\n\n", p.Address)

	b.WriteString("Order Details:\n")
	for _, it := range p.Cart {
		lineTotal := it.Price * float64(it.Quantity)
		fmt.Fprintf(&b, "- %s (x%d): ৳%s\n", it.Name.Get(catalog.LangEN), it.Quantity, taka(lineTotal))
		fmt.Fprintf(&b, "  Item ID: %s\n", it.ID)
		if it.Brand != nil {
			fmt.Fprintf(&b, "  Brand: %s\n", orNA(it.Brand.En))
		}
		if it.Model != nil {
			fmt.Fprintf(&b, "  Model: %s\n", orNA(it.Model.En))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Total Price: ৳%s\n\n", taka(p.Total()))
	b.WriteString("Customer Message:\n")
	b.WriteString(orNA(p.Message))
	b.WriteString("\n")
	return b.String()
}

// Service submits orders: mails the owner and records the order. A nil
// Sender (SMTP unconfigured) fails submission, mirroring the original's
// misconfiguration response; a nil repo skips logging.
type Service struct {
	Sender Sender
	Repo   *orderRepo.OrderRepository
}

// Submit sends the notification email and, on success, logs the order.
// On any failure the caller keeps the cart intact so the user can retry.
func (s *Service) Submit(p Payload) error {
	if s.Sender == nil {
		return fmt.Errorf("order: email sender not configured")
	}
	if err := s.Sender.Send("New Order from Bazar-Sodai", FormatEmail(p)); err != nil {
		return fmt.Errorf("order: send mail: %w", err)
	}
	if s.Repo != nil {
		raw, err := json.Marshal(p.Cart)
		if err != nil {
			return fmt.Errorf("order: encode payload: %w", err)
		}
		log := entity.OrderLog{
			Name:    p.Name,
			Phone:   p.Phone,
			Address: p.Address,
			Payload: raw,
			Total:   p.Total(),
		}
		if p.Email != "" {
			log.Email = &p.Email
		}
		if p.Message != "" {
			log.Message = &p.Message
		}
		if err := s.Repo.Save(&log); err != nil {
			return fmt.Errorf("order: log order: %w", err)
		}
	}
	return nil
}
