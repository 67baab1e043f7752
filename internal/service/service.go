package service

import (
	"encoding/json"
	"log"
	"strconv"
	"time"

	"phoneline/internal/domain"
)

// UpdateResult tags the outcome of a status update so callers can decide
// which conditions to surface.
type UpdateResult int

const (
	StatusUpdated UpdateResult = iota
	StatusNotFound
	StatusInvalid
)

// CreateOrderRequest is the inbound webhook payload. Items is kept raw
// because callers send either a structured array or a plain string.
type CreateOrderRequest struct {
	BusinessID          string          `json:"businessId"`
	CustomerName        string          `json:"customerName"`
	CustomerPhone       string          `json:"customerPhone"`
	Items               json.RawMessage `json:"items"`
	SpecialInstructions string          `json:"specialInstructions"`
	Total               float64         `json:"total"`
}

type OrderService struct {
	repo    OrderRepository
	printer TicketPrinter
	qr      QRGenerator
}

func NewOrderService(repo OrderRepository, printer TicketPrinter, qr QRGenerator) *OrderService {
	return &OrderService{repo: repo, printer: printer, qr: qr}
}

// Create normalizes the payload, persists the order, and hands the ticket to
// the printer. Printing is best-effort: its outcome never affects the result.
func (s *OrderService) Create(req *CreateOrderRequest) (*domain.Order, error) {
	order := &domain.Order{
		BusinessID:          req.BusinessID,
		OrderNumber:         nextOrderNumber(time.Now()),
		CustomerName:        req.CustomerName,
		CustomerPhone:       req.CustomerPhone,
		Items:               normalizeItems(req.Items),
		SpecialInstructions: req.SpecialInstructions,
		Total:               req.Total,
		Status:              domain.StatusNew,
	}
	if order.BusinessID == "" {
		order.BusinessID = domain.DefaultBusinessID
	}
	if order.CustomerName == "" {
		order.CustomerName = "Guest"
	}
	if order.Total < 0 {
		order.Total = 0
	}

	if err := s.repo.CreateOrder(order); err != nil {
		return nil, err
	}

	if s.printer != nil {
		s.printer.Dispatch(order.BusinessID, FormatTicket(order))
	}

	return order, nil
}

func (s *OrderService) List(businessID, status string) ([]domain.Order, error) {
	return s.repo.ListOrders(businessID, status)
}

// UpdateStatus rejects unknown status values and reports whether the id
// matched a row. Repository failures are the only error case.
func (s *OrderService) UpdateStatus(id int64, status string) (UpdateResult, error) {
	if !domain.KnownStatus(status) {
		return StatusInvalid, nil
	}
	rows, err := s.repo.UpdateStatus(id, status)
	if err != nil {
		return StatusNotFound, err
	}
	if rows == 0 {
		log.Printf("[service] status update for unknown order %d ignored", id)
		return StatusNotFound, nil
	}
	return StatusUpdated, nil
}

func (s *OrderService) QRCode(orderID int64) ([]byte, error) {
	return s.qr.Generate(orderID)
}

// nextOrderNumber derives a display number from the clock. Not collision-free
// under burst intake; the row id remains the real key.
func nextOrderNumber(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	return "ORD-" + ms[len(ms)-6:]
}

// normalizeItems accepts either a structured item array or a string. A string
// that parses as an item array is used as such; any other string becomes a
// single quantity-1 line item named after it.
func normalizeItems(raw json.RawMessage) []domain.OrderItem {
	if len(raw) == 0 {
		return []domain.OrderItem{}
	}

	var items []domain.OrderItem
	if err := json.Unmarshal(raw, &items); err == nil {
		return cleanItems(items)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if err := json.Unmarshal([]byte(s), &items); err == nil {
			return cleanItems(items)
		}
		return []domain.OrderItem{{Name: s, Quantity: 1, Modifications: []string{}}}
	}

	log.Printf("[service] unrecognized items payload, storing empty list")
	return []domain.OrderItem{}
}

func cleanItems(items []domain.OrderItem) []domain.OrderItem {
	if items == nil {
		return []domain.OrderItem{}
	}
	for i := range items {
		if items[i].Quantity < 1 {
			items[i].Quantity = 1
		}
		if items[i].Modifications == nil {
			items[i].Modifications = []string{}
		}
	}
	return items
}

var _ OrderServiceInterface = (*OrderService)(nil)
