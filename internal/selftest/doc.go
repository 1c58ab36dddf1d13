// Package selftest exercises the full generate, exchange, derive, encrypt,
// decrypt round trip, plus backup and restore, and reports pass/fail per
// step. The chat layer and the CLI run it to verify the crypto core against
// the platform it is actually running on.
package selftest
