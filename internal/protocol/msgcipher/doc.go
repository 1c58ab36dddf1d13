// Package msgcipher seals and opens individual message payloads under a
// directional session key.
//
// # Wire shape
//
// Every sealed message is nonce | ciphertext | tag, base64 transport-encoded
// into domain.EncryptedMessage together with the encryption-time timestamp in
// milliseconds. The nonce is 12 random bytes per call; it is never derived
// from a counter because counters do not survive process restarts without
// persisted state.
//
// # Associated data
//
// AAD binds sender, recipient and timestamp to a message without encrypting
// them. Both encrypt and decrypt call sites must compute it identically from
// message metadata, never from the ciphertext. Any mismatch fails the tag
// check.
//
// # Errors
//
// Tag failures, bit flips, truncation and transport-encoding corruption all
// report domain.ErrAuthentication identically, so a failure reveals nothing
// about why decryption failed.
package msgcipher
