package workers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"orders/internal/adapters/out/notifier"
	"orders/internal/core/ports"
	"orders/internal/workers"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// waitForLogLine polls the buffer until a line containing the marker shows up
// or the timeout elapses. The worker consumes on its own goroutine, so log
// output is not available synchronously after publish.
func waitForLogLine(t *testing.T, buf *syncBuffer, marker string) string {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case <-deadline:
			t.Fatalf("no log line containing %q", marker)
		default:
		}

		for _, line := range strings.Split(buf.String(), "\n") {
			if strings.Contains(line, marker) {
				return line
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestNotificationWorker_LogsNotificationSent(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	buf := &syncBuffer{}
	logger := slog.New(slog.NewJSONHandler(buf, nil))

	worker := workers.NewNotificationWorker(pubSub, logger)
	require.NoError(t, worker.Start())
	defer worker.Stop()

	publisher := notifier.NewWatermillNotificationPublisher(pubSub)
	err := publisher.PublishStatusChanged(context.Background(), ports.StatusChangedNotification{
		OrderID:           "7e6f4a7e-20da-4d3f-9bcb-0b00cbb0642f",
		CustomerReference: "cust-1",
		NewStatus:         "confirmed",
		OccurredAt:        time.Now().UTC(),
	})
	require.NoError(t, err)

	line := waitForLogLine(t, buf, "notification_sent")

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &record))
	assert.Equal(t, "notification_sent", record["event"])
	assert.Equal(t, "7e6f4a7e-20da-4d3f-9bcb-0b00cbb0642f", record["order_id"])
	assert.Equal(t, "cust-1", record["customer_reference"])
	assert.Equal(t, "confirmed", record["status"])
	assert.Equal(t, "notification_worker", record["component"])
}

func TestNotificationWorker_LogsFailureOnMalformedPayload(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	buf := &syncBuffer{}
	logger := slog.New(slog.NewJSONHandler(buf, nil))

	worker := workers.NewNotificationWorker(pubSub, logger)
	require.NoError(t, worker.Start())
	defer worker.Stop()

	msg := message.NewMessage(watermill.NewUUID(), []byte("not json"))
	require.NoError(t, pubSub.Publish(notifier.StatusChangedTopic, msg))

	line := waitForLogLine(t, buf, "notification_failed")

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &record))
	assert.Equal(t, "notification_failed", record["event"])
	assert.Equal(t, msg.UUID, record["message_id"])
}

func TestNotificationWorker_StopIsIdempotentBeforeStart(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	worker := workers.NewNotificationWorker(pubSub, slog.New(slog.DiscardHandler))

	// Stop before Start must not panic or block.
	worker.Stop()
}

// syncBuffer guards a bytes.Buffer for concurrent reads from the test
// goroutine while the worker writes log records.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
