package events_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/chris/risk-pool-lending/pkg/events"
	"github.com/chris/risk-pool-lending/pkg/models"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHubBroadcast(t *testing.T) {
	hub := events.NewHub(testLogger())

	server := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Registration races the dial; wait for the hub to see the client.
	require.Eventually(t, func() bool {
		return hub.ClientCount() == 1
	}, time.Second, 10*time.Millisecond)

	sent := models.Event{
		Id:         "ev-1",
		Type:       models.EventLoanRepaid,
		LoanRepaid: &models.LoanRepaid{LoanId: 3, Borrower: "alice", Amount: 400},
	}
	require.NoError(t, hub.Publish(context.Background(), sent))

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var received models.Event
	require.NoError(t, json.Unmarshal(payload, &received))
	assert.Equal(t, sent.Id, received.Id)
	assert.Equal(t, sent.Type, received.Type)
	require.NotNil(t, received.LoanRepaid)
	assert.Equal(t, uint64(400), received.LoanRepaid.Amount)
}

func TestHubPublishWithoutClients(t *testing.T) {
	hub := events.NewHub(testLogger())

	err := hub.Publish(context.Background(), models.Event{Id: "ev-1", Type: models.EventPoolCreated})

	assert.NoError(t, err)
}
