// Package domain defines the types, interfaces and error kinds shared by the
// sealchat core.
//
// # Contents
//
//   - Identity material (IdentityKeyPair, PortableKeyPair, EncryptedKeyBackup)
//   - Session material (SessionKeys, SecureSession)
//   - Wire records (EncryptedMessage, all fields string-safe for any
//     text-capable store or transport)
//   - Service and store interfaces implemented elsewhere in the module
//   - Sentinel errors for every failure class a caller can act on
//
// # Notes
//
// Private key handles never serialize through this package directly: the only
// paths off the device are the explicit export (device migration) and the
// password-authenticated backup, both owned by the identity service.
package domain
