// Package internal holds small helpers shared by the root package:
// verification-code generation and registration field validators.
package internal
