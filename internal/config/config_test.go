package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "phoneline.db", cfg.DBPath)
	assert.Empty(t, cfg.PrintMethod)
	assert.Empty(t, cfg.PrinterIDs)
	assert.Empty(t, cfg.PrintWebhooks)
}

func TestLoadPrintConfiguration(t *testing.T) {
	t.Setenv("PORT", "8090")
	t.Setenv("PRINT_METHOD", "printnode")
	t.Setenv("PRINTNODE_API_KEY", "secret-key")
	t.Setenv("PRINTER_IDS", `{"pizzeria":"42","taqueria":"43"}`)
	t.Setenv("PRINT_WEBHOOKS", `{"pizzeria":"https://example.com/print"}`)

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 8090, cfg.Port)
	assert.Equal(t, PrintMethodPrintNode, cfg.PrintMethod)
	assert.Equal(t, "secret-key", cfg.PrintNodeAPIKey)
	assert.Equal(t, map[string]string{"pizzeria": "42", "taqueria": "43"}, cfg.PrinterIDs)
	assert.Equal(t, map[string]string{"pizzeria": "https://example.com/print"}, cfg.PrintWebhooks)
}

func TestLoadRejectsMalformedMaps(t *testing.T) {
	t.Setenv("PRINTER_IDS", "not-json")

	_, err := Load()
	assert.Error(t, err)
}
