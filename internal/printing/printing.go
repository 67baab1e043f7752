// Package printing delivers formatted kitchen tickets to one of several
// output channels, selected once at startup from configuration.
package printing

import (
	"log"
	"net/http"
	"time"

	"phoneline/internal/config"
)

// Channel submits one ticket. Missing per-business configuration is a silent
// skip (nil error); transport and HTTP failures are real errors.
type Channel interface {
	Submit(businessID, ticket string) error
}

// outboundClient bounds every print call so a dead print endpoint cannot
// stall order intake indefinitely.
var outboundClient = &http.Client{Timeout: 10 * time.Second}

// Dispatcher wraps the configured channel. It never propagates failures:
// printing is best-effort and the order has already been saved.
type Dispatcher struct {
	channel Channel
	method  string
}

func NewDispatcher(channel Channel, method string) *Dispatcher {
	return &Dispatcher{channel: channel, method: method}
}

// FromConfig selects the print channel named by PRINT_METHOD.
func FromConfig(cfg *config.Config) *Dispatcher {
	var channel Channel
	switch cfg.PrintMethod {
	case config.PrintMethodPrintNode:
		channel = &PrintNodeChannel{APIKey: cfg.PrintNodeAPIKey, PrinterIDs: cfg.PrinterIDs}
	case config.PrintMethodWebhook:
		channel = &WebhookChannel{URLs: cfg.PrintWebhooks}
	case config.PrintMethodEscpos:
		channel = &EscposChannel{}
	case "":
		log.Printf("[printing] PRINT_METHOD not set, printing disabled")
	default:
		log.Printf("[printing] unknown PRINT_METHOD %q, printing disabled", cfg.PrintMethod)
	}
	return NewDispatcher(channel, cfg.PrintMethod)
}

func (d *Dispatcher) Dispatch(businessID, ticket string) {
	if d.channel == nil {
		log.Printf("[printing] no print channel configured, skipping ticket for %s", businessID)
		return
	}
	if err := d.channel.Submit(businessID, ticket); err != nil {
		log.Printf("[printing] %s dispatch failed for %s: %v", d.method, businessID, err)
	}
}
