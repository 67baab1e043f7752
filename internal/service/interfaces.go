package service

import "phoneline/internal/domain"

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	ListOrders(businessID, status string) ([]domain.Order, error)
	UpdateStatus(id int64, status string) (int64, error)
}

// TicketPrinter delivers a formatted kitchen ticket. Implementations own
// their failures: Dispatch logs and swallows them, it never reports back.
type TicketPrinter interface {
	Dispatch(businessID, ticket string)
}

type QRGenerator interface {
	Generate(orderID int64) ([]byte, error)
}

type OrderServiceInterface interface {
	Create(req *CreateOrderRequest) (*domain.Order, error)
	List(businessID, status string) ([]domain.Order, error)
	UpdateStatus(id int64, status string) (UpdateResult, error)
	QRCode(orderID int64) ([]byte, error)
}
