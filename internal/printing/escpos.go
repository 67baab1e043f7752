package printing

import "log"

// EscposChannel is a placeholder for direct ESC/POS thermal printing.
type EscposChannel struct{}

func (c *EscposChannel) Submit(businessID, ticket string) error {
	log.Printf("[printing] direct ESC/POS printing not implemented yet, dropping ticket for %s", businessID)
	return nil
}
