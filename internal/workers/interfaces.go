// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background workers of the client as one unit.
// It defines the Worker interface and a Workers aggregate that starts them
// in order and stops them in reverse.
package workers

import "context"

// Worker is implemented by every background worker. Run must start the
// worker and return; the work itself runs in goroutines owned by the worker
// until Stop is called or ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    ctx, w.cancel = context.WithCancel(ctx)
//	    go process(ctx)
//	}
//
//	func (w *MyWorker) Stop() { w.cancel() }
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
