// Package stores contains the Redis-backed verification-code store.
//
// # Architecture boundaries
//
// This package owns key layout, record encoding, and TTL enforcement for
// pending verification codes. Flow decisions (when to put, check, or remove
// a code) live in the root package.
//
// # What this package must NOT do
//
//   - Generate or compare verification codes.
//   - Import the root package.
package stores
