// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that starts and
// stops several workers in a unified way, and a bounded Pool used to keep
// CPU-heavy work such as password hashing off request goroutines.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and must not block; implementations spawn their
// own goroutines. Stop signals the worker to finish and waits for it.
//
// Example implementation:
//
//	type MyWorker struct{ quit chan struct{} }
//
//	func (w *MyWorker) Run()  { go w.loop() }
//	func (w *MyWorker) Stop() { close(w.quit) }
type Worker interface {
	Run()
	Stop()
}
