// Package workers provides background message consumers for the order service.
//
// Workers are decoupled from the HTTP request cycle: command handlers publish
// messages to an in-process Watermill Pub/Sub and return immediately, while
// workers consume those messages on their own goroutines.
//
// # Available Workers
//
// 1. NotificationWorker - Consumes order status change messages and notifies
// the customer associated with the order.
//
// # Usage
//
// Workers are managed through WorkerManager which provides a unified interface:
//
//	workerManager := workers.NewWorkerManager(pubSub, logger)
//
//	if err := workerManager.StartAll(); err != nil {
//		log.Fatal("Failed to start workers:", err)
//	}
//
//	defer workerManager.StopAll()
//
// # Delivery Guarantees
//
// Messages live on an in-process channel only. A notification that has been
// published but not yet consumed is lost if the process terminates. Failures
// inside a worker are logged and never propagate back to the request that
// produced the message.
package workers
