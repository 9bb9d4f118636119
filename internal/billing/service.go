package billing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

// paymentDelay simulates the card terminal / wallet round trip. A
// real gateway integration would replace this step behind the same
// method and would need its own cancel/timeout contract.
const paymentDelay = 2 * time.Second

type Service struct {
	repo     Repository
	notifier Notifier
	delay    time.Duration
}

func NewService(repo Repository, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		delay:    paymentDelay,
	}
}

// --------------------------------------------------
// Create Bill
// --------------------------------------------------
func (s *Service) CreateBill(
	ctx context.Context,
	table string,
	items []OrderItem,
) (*Bill, error) {

	if table == "" {
		return nil, errors.New("table label is required")
	}
	if len(items) == 0 {
		return nil, errors.New("at least one item is required")
	}

	for i, it := range items {
		if it.Name == "" {
			return nil, fmt.Errorf("item %d: name is required", i+1)
		}
		if it.Price < 0 {
			return nil, fmt.Errorf("item %d: price must not be negative", i+1)
		}
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("item %d: quantity must be positive", i+1)
		}
		if it.ID == "" {
			items[i].ID = uuid.New().String()
		}
	}

	bill := &Bill{
		OrderID: "ORD-" + strings.ToUpper(uuid.New().String()[:8]),
		Table:   table,
		Items:   items,
	}
	bill.Recalculate()

	if err := s.repo.Create(ctx, bill); err != nil {
		return nil, err
	}

	return bill, nil
}

func (s *Service) GetBill(ctx context.Context, orderID string) (*Bill, error) {
	return s.repo.GetByOrderID(ctx, orderID)
}

// --------------------------------------------------
// Mutations — every change recomputes the totals
// --------------------------------------------------

func (s *Service) SetTip(
	ctx context.Context,
	orderID string,
	tipPercent float64,
) (*Bill, error) {

	bill, err := s.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if bill.Paid {
		return nil, errors.New("bill already paid")
	}

	bill.TipPercent = tipPercent
	bill.Recalculate()

	if err := s.repo.Update(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

func (s *Service) SetDiscount(
	ctx context.Context,
	orderID string,
	discount float64,
) (*Bill, error) {

	if discount < 0 {
		return nil, errors.New("discount must not be negative")
	}

	bill, err := s.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if bill.Paid {
		return nil, errors.New("bill already paid")
	}

	// Over-discounting past the payable amount is rejected at this
	// edge; Calculate itself never clamps.
	if discount > bill.Subtotal+bill.Subtotal*TaxRate {
		return nil, errors.New("discount exceeds subtotal plus tax")
	}

	bill.Discount = discount
	bill.Recalculate()

	if err := s.repo.Update(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

func (s *Service) SetPaymentMethod(
	ctx context.Context,
	orderID string,
	method string,
) (*Bill, error) {

	if !ValidPaymentMethod(method) {
		return nil, errors.New("payment method must be cash, card or wallet")
	}

	bill, err := s.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if bill.Paid {
		return nil, errors.New("bill already paid")
	}

	bill.PaymentMethod = method
	bill.Recalculate()

	if err := s.repo.Update(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

// --------------------------------------------------
// Process Payment (SIMULATED, fixed delay)
// --------------------------------------------------
func (s *Service) ProcessPayment(
	ctx context.Context,
	orderID string,
) (*Bill, error) {

	bill, err := s.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if bill.Paid {
		return nil, errors.New("bill already paid")
	}
	if bill.PaymentMethod == "" {
		return nil, errors.New("select a payment method first")
	}

	time.Sleep(s.delay)

	bill.Paid = true
	if err := s.repo.Update(ctx, bill); err != nil {
		return nil, err
	}

	log.Printf("PAYMENT_OK order=%s method=%s amount=%.2f",
		bill.OrderID, bill.PaymentMethod, bill.Total)

	// Auto-send the receipt when a contact was saved on the bill.
	if bill.CustomerPhone != "" {
		if err := s.SendReceipt(ctx, orderID, bill.CustomerPhone); err != nil {
			log.Printf("RECEIPT_SEND_FAILED order=%s: %v", bill.OrderID, err)
		}
	}

	return bill, nil
}

// --------------------------------------------------
// Print Bill (SIMULATED)
// --------------------------------------------------
func (s *Service) PrintBill(ctx context.Context, orderID string) (*Bill, error) {
	bill, err := s.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	log.Printf("PRINT_JOB order=%s table=%s total=%.2f",
		bill.OrderID, bill.Table, bill.Total)

	return bill, nil
}

// --------------------------------------------------
// Send Receipt (validated phone, narrow notifier)
// --------------------------------------------------
func (s *Service) SendReceipt(
	ctx context.Context,
	orderID string,
	phone string,
) error {

	phone = strings.TrimSpace(phone)
	if err := ValidatePhone(phone); err != nil {
		return err
	}

	bill, err := s.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return err
	}

	if bill.CustomerPhone != phone {
		bill.CustomerPhone = phone
		if err := s.repo.Update(ctx, bill); err != nil {
			return err
		}
	}

	return s.notifier.SendReceipt(ctx, phone, ReceiptMessage(bill))
}

// WhatsAppNotifier is the stand-in messaging provider: it builds the
// wa.me link and logs it instead of calling a real API.
type WhatsAppNotifier struct{}

func (WhatsAppNotifier) SendReceipt(ctx context.Context, phone, message string) error {
	log.Printf("WHATSAPP_RECEIPT to=%s url=%s", phone, WhatsAppLink(phone, message))
	return nil
}
