package printing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// WebhookChannel POSTs tickets to a per-business webhook URL, fire-and-forget.
type WebhookChannel struct {
	URLs map[string]string

	Client *http.Client
}

type webhookEnvelope struct {
	Content    string `json:"content"`
	BusinessID string `json:"businessId"`
}

func (c *WebhookChannel) Submit(businessID, ticket string) error {
	url := c.URLs[businessID]
	if url == "" {
		log.Printf("[printing] no print webhook configured for %s, skipping", businessID)
		return nil
	}

	body, err := json.Marshal(webhookEnvelope{Content: ticket, BusinessID: businessID})
	if err != nil {
		return fmt.Errorf("encode webhook payload: %w", err)
	}

	resp, err := c.client().Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

func (c *WebhookChannel) client() *http.Client {
	if c.Client != nil {
		return c.Client
	}
	return outboundClient
}
