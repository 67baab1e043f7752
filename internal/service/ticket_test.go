package service

import (
	"strings"
	"testing"
	"time"

	"phoneline/internal/domain"
)

func sampleOrder() *domain.Order {
	return &domain.Order{
		ID:           7,
		BusinessID:   "pizzeria",
		OrderNumber:  "ORD-123456",
		CustomerName: "Alice",
		Items: []domain.OrderItem{
			{Name: "Burger", Quantity: 2, Modifications: []string{"no onions", "extra cheese"}},
			{Name: "Fries", Quantity: 1, Modifications: []string{}},
		},
		Total:     15.5,
		Status:    domain.StatusNew,
		CreatedAt: time.Date(2026, time.March, 14, 15, 4, 5, 0, time.UTC),
	}
}

func TestFormatTicketLayout(t *testing.T) {
	order := sampleOrder()
	order.CustomerPhone = "555-0199"
	order.SpecialInstructions = "ring twice"

	want := strings.Join([]string{
		"================================",
		"Order: ORD-123456",
		"Time: 3:04:05 PM",
		"Customer: Alice",
		"Phone: 555-0199",
		"--------------------------------",
		"2x Burger",
		"   - no onions",
		"   - extra cheese",
		"1x Fries",
		"--------------------------------",
		"Special Instructions:",
		"ring twice",
		"--------------------------------",
		"TOTAL: $15.50",
		"================================",
		"",
	}, "\n")

	if got := FormatTicket(order); got != want {
		t.Fatalf("ticket mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestFormatTicketOmitsEmptyOptionalLines(t *testing.T) {
	order := sampleOrder()

	ticket := FormatTicket(order)
	if strings.Contains(ticket, "Phone:") {
		t.Fatal("expected no phone line for empty phone")
	}
	if strings.Contains(ticket, "Special Instructions:") {
		t.Fatal("expected no instructions block for empty instructions")
	}
}

func TestFormatTicketDeterministic(t *testing.T) {
	order := sampleOrder()
	if FormatTicket(order) != FormatTicket(order) {
		t.Fatal("expected byte-identical tickets for the same order")
	}
}

func TestFormatTicketTotalTwoDecimals(t *testing.T) {
	order := sampleOrder()
	order.Total = 7.5

	if !strings.Contains(FormatTicket(order), "TOTAL: $7.50\n") {
		t.Fatal("expected total rendered with exactly two decimal places")
	}
}
