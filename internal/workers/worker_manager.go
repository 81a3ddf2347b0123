package workers

import (
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
)

// WorkerManager coordinates all background workers in the application.
// Provides a unified interface to start and stop them.
type WorkerManager struct {
	notificationWorker *NotificationWorker
}

// NewWorkerManager creates a worker manager with all required workers.
func NewWorkerManager(subscriber message.Subscriber, logger *slog.Logger) *WorkerManager {
	return &WorkerManager{
		notificationWorker: NewNotificationWorker(subscriber, logger),
	}
}

// StartAll starts all background workers.
// Returns an error if any worker fails to start.
func (wm *WorkerManager) StartAll() error {
	if err := wm.notificationWorker.Start(); err != nil {
		return fmt.Errorf("failed to start notification worker: %w", err)
	}

	return nil
}

// StopAll stops all background workers gracefully.
func (wm *WorkerManager) StopAll() {
	wm.notificationWorker.Stop()
}
