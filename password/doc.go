// Package password implements the default Argon2id password hasher used by
// the engine when no custom hasher is injected.
//
// Hashes use PHC string encoding so parameters travel with the hash and
// verification works across parameter upgrades. Comparison is constant-time.
package password
