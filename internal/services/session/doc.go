// Package session is the façade the chat layer calls: establish a secure
// session with a peer, then encrypt and decrypt messages under it.
//
// # Flow
//
//  1. The transport delivers the peer's public key (base64) and fingerprint.
//  2. Establish imports and verifies the peer key, derives the directional
//     session keys and mints a session identifier from both fingerprints plus
//     the establishment time.
//  3. EncryptMessage and DecryptMessage compute the associated data from the
//     session's sender/recipient identifiers and the message timestamp, so
//     callers cannot accidentally omit the binding.
//
// Concurrent encrypts and decrypts on the same session are safe: the session
// holds no counters, every nonce is freshly random.
package session
