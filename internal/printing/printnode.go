package printing

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

const printNodeJobsURL = "https://api.printnode.com/printjobs"

// PrintNodeChannel submits tickets as raw print jobs to the PrintNode API.
type PrintNodeChannel struct {
	APIKey     string
	PrinterIDs map[string]string

	// Endpoint overrides the PrintNode jobs URL, used in tests.
	Endpoint string
	Client   *http.Client
}

func (c *PrintNodeChannel) Submit(businessID, ticket string) error {
	if c.APIKey == "" {
		log.Printf("[printing] printnode api key not set, skipping ticket for %s", businessID)
		return nil
	}
	printerID := c.PrinterIDs[businessID]
	if printerID == "" {
		log.Printf("[printing] no printnode printer configured for %s, skipping", businessID)
		return nil
	}

	payload := map[string]any{
		"printerId":   printerID,
		"title":       "Kitchen Ticket",
		"contentType": "raw_base64",
		"content":     base64.StdEncoding.EncodeToString([]byte(ticket)),
		"source":      "phoneline",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode print job: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build print job request: %w", err)
	}
	// PrintNode auth is the API key as basic-auth username, blank password.
	req.SetBasicAuth(c.APIKey, "")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client().Do(req)
	if err != nil {
		return fmt.Errorf("printnode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("printnode returned status %d", resp.StatusCode)
	}
	return nil
}

func (c *PrintNodeChannel) endpoint() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	return printNodeJobsURL
}

func (c *PrintNodeChannel) client() *http.Client {
	if c.Client != nil {
		return c.Client
	}
	return outboundClient
}
