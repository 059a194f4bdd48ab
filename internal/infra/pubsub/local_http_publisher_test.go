package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"salesboard/config"
	"salesboard/internal/domain/constants"
	"salesboard/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishImportCompleted(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := &service.ImportCompletedEvent{
		RequestID:     "req-1",
		PlatformID:    3,
		PlatformName:  "Amazon",
		RowsProcessed: 5,
	}

	require.NoError(t, publisher.PublishImportCompleted(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, "Amazon", received.Message.Attributes["platform_name"])
	assert.Equal(t, "3", received.Message.Attributes["platform_id"])
	assert.Equal(t, "req-1", received.Message.Attributes["request_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.ImportCompletedEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 5, decoded.RowsProcessed)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishImportCompleted(context.Background(), &service.ImportCompletedEvent{PlatformName: "Amazon"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNewPublisher_SelectsProvider(t *testing.T) {
	ctx := context.Background()

	publisher, err := newPublisher(ctx, nil, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.PublishImportCompleted(ctx, &service.ImportCompletedEvent{}))

	publisher, err = newPublisher(ctx, &config.PubSubConfig{
		Provider:      constants.PubSubProviderLocal,
		LocalEndpoint: "http://localhost:8085/events",
	}, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)

	_, err = newPublisher(ctx, &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, discardLogger())
	assert.Error(t, err)

	_, err = newPublisher(ctx, &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, discardLogger())
	assert.ErrorContains(t, err, "topic ID is required")

	_, err = newPublisher(ctx, &config.PubSubConfig{Provider: "kafka"}, discardLogger())
	assert.ErrorContains(t, err, "unknown pubsub provider")
}
