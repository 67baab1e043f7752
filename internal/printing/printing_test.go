package printing

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"phoneline/internal/config"

	"github.com/stretchr/testify/assert"
)

const testTicket = "2x Burger\n   - no onions\n"

func TestPrintNodeChannel_SubmitsJob(t *testing.T) {
	var gotAuthUser string
	var gotPayload map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthUser, _, _ = r.BasicAuth()
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	channel := &PrintNodeChannel{
		APIKey:     "secret-key",
		PrinterIDs: map[string]string{"pizzeria": "42"},
		Endpoint:   server.URL,
		Client:     server.Client(),
	}

	assert.NoError(t, channel.Submit("pizzeria", testTicket))
	assert.Equal(t, "secret-key", gotAuthUser)
	assert.Equal(t, "42", gotPayload["printerId"])
	assert.Equal(t, "raw_base64", gotPayload["contentType"])

	decoded, err := base64.StdEncoding.DecodeString(gotPayload["content"].(string))
	assert.NoError(t, err)
	assert.Equal(t, testTicket, string(decoded))
}

func TestPrintNodeChannel_SkipsWhenUnconfigured(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	tests := []struct {
		name    string
		channel *PrintNodeChannel
	}{
		{
			name:    "missing api key",
			channel: &PrintNodeChannel{PrinterIDs: map[string]string{"pizzeria": "42"}, Endpoint: server.URL},
		},
		{
			name:    "no printer for business",
			channel: &PrintNodeChannel{APIKey: "secret-key", PrinterIDs: map[string]string{}, Endpoint: server.URL},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.NoError(t, testCase.channel.Submit("pizzeria", testTicket))
		})
	}
	assert.Equal(t, 0, requests)
}

func TestPrintNodeChannel_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	channel := &PrintNodeChannel{
		APIKey:     "secret-key",
		PrinterIDs: map[string]string{"pizzeria": "42"},
		Endpoint:   server.URL,
		Client:     server.Client(),
	}

	assert.Error(t, channel.Submit("pizzeria", testTicket))
}

func TestWebhookChannel_PostsEnvelope(t *testing.T) {
	var got webhookEnvelope
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer server.Close()

	channel := &WebhookChannel{
		URLs:   map[string]string{"pizzeria": server.URL},
		Client: server.Client(),
	}

	assert.NoError(t, channel.Submit("pizzeria", testTicket))
	assert.Equal(t, testTicket, got.Content)
	assert.Equal(t, "pizzeria", got.BusinessID)
}

func TestWebhookChannel_SkipsWhenUnmapped(t *testing.T) {
	channel := &WebhookChannel{URLs: map[string]string{}}
	assert.NoError(t, channel.Submit("pizzeria", testTicket))
}

func TestWebhookChannel_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	channel := &WebhookChannel{
		URLs:   map[string]string{"pizzeria": server.URL},
		Client: server.Client(),
	}

	assert.Error(t, channel.Submit("pizzeria", testTicket))
}

func TestEscposChannel_IsNoop(t *testing.T) {
	channel := &EscposChannel{}
	assert.NoError(t, channel.Submit("pizzeria", testTicket))
}

func TestDispatcher_SwallowsChannelFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	channel := &WebhookChannel{
		URLs:   map[string]string{"pizzeria": server.URL},
		Client: server.Client(),
	}

	// Must not panic or surface anything.
	NewDispatcher(channel, config.PrintMethodWebhook).Dispatch("pizzeria", testTicket)
	NewDispatcher(nil, "").Dispatch("pizzeria", testTicket)
}

func TestFromConfig_ChannelSelection(t *testing.T) {
	tests := []struct {
		method      string
		wantChannel any
	}{
		{config.PrintMethodPrintNode, &PrintNodeChannel{}},
		{config.PrintMethodWebhook, &WebhookChannel{}},
		{config.PrintMethodEscpos, &EscposChannel{}},
		{"", nil},
		{"carrier-pigeon", nil},
	}

	for _, testCase := range tests {
		t.Run("method_"+testCase.method, func(t *testing.T) {
			dispatcher := FromConfig(&config.Config{PrintMethod: testCase.method})
			if testCase.wantChannel == nil {
				assert.Nil(t, dispatcher.channel)
				return
			}
			assert.IsType(t, testCase.wantChannel, dispatcher.channel)
		})
	}
}
