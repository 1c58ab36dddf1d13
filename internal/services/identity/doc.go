// Package identity manages the long-term identity key pair: generation,
// portable export/import for device migration, peer key import, and
// password-protected backup and restore.
//
// Generation and backup/restore for the same identity are serialized by the
// service so concurrent calls cannot race overwrites of stored key material.
// Agreement and cipher operations elsewhere treat the pair as read-only.
package identity
