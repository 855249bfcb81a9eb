package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendConfirmationEndpoint(t *testing.T) {
	r, _, mailer := setupTest(t)

	w := doRequest(t, r, http.MethodPost, "/send-confirmation", "", map[string]interface{}{
		"user_name":      "Alice",
		"user_email":     "alice@example.com",
		"event_name":     "Go Meetup",
		"event_date":     "2026-10-01",
		"event_venue":    "Town Hall",
		"event_category": "General",
		"event_price":    25,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, mailer.confirmations, 1)
	assert.Equal(t, "alice@example.com", mailer.confirmations[0])
}

func TestSendConfirmationFailure(t *testing.T) {
	r, _, mailer := setupTest(t)
	mailer.fail = true

	w := doRequest(t, r, http.MethodPost, "/send-confirmation", "", map[string]interface{}{
		"user_name":  "Alice",
		"user_email": "alice@example.com",
		"event_name": "Go Meetup",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSendCancellationEndpoint(t *testing.T) {
	r, _, mailer := setupTest(t)

	w := doRequest(t, r, http.MethodPost, "/send-cancellation", "", map[string]interface{}{
		"users": []map[string]string{
			{"name": "Alice", "email": "alice@example.com"},
			{"name": "Bob", "email": "bob@example.com"},
		},
		"event_name":  "Go Meetup",
		"event_date":  "2026-10-01",
		"event_venue": "Town Hall",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, mailer.cancellations, 1)
	assert.Len(t, mailer.cancellations[0], 2)
}

func TestSendCancellationFailure(t *testing.T) {
	r, _, mailer := setupTest(t)
	mailer.fail = true

	w := doRequest(t, r, http.MethodPost, "/send-cancellation", "", map[string]interface{}{
		"users":      []map[string]string{{"name": "Alice", "email": "alice@example.com"}},
		"event_name": "Go Meetup",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
