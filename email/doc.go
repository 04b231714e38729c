// Package email provides an SMTP implementation of the engine's EmailSender
// collaborator. Delivery is synchronous and best-effort; the engine treats a
// send failure as a signal to discard the pending verification code.
package email
