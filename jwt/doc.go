// Package jwt issues and validates the signed, stateless session tokens
// minted on successful login.
//
// Tokens are HS256-signed and carry the member id as subject, the member's
// role names, issue time, expiry, and a unique jti. Validation is purely
// signature-and-expiry; there is no server-side session state to consult.
//
// # What this package must NOT do
//
//   - Read the signing secret from the environment or any global.
//   - Accept tokens signed with any algorithm other than HS256.
package jwt
