// Package store persists the local identity on disk.
//
// The at-rest format is the same EncryptedKeyBackup record used for explicit
// backups: every field is base64 or plain text, so the file is portable to
// any text-capable store. Files are written 0600 via a temp-file rename, so a
// failed save or restore leaves the previous identity untouched.
package store
