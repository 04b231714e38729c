// Package audit provides the audit event model and the asynchronous
// dispatcher used by the engine.
//
// # Architecture boundaries
//
// This package owns event buffering and sink fan-out. Event emission points
// live in the root package; sinks are supplied by the host application.
//
// # What this package must NOT do
//
//   - Block engine operations when a sink is slow (DropIfFull mode).
//   - Import the root package or any sibling package.
package audit
