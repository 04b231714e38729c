// Package prometheus renders engine metric snapshots in the Prometheus text
// exposition format. It holds no state of its own; every render reads a
// fresh snapshot from the engine.
package prometheus
