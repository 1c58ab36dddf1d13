package msgcipher

import "strconv"

// aadSeparator keeps the three AAD fields from running into each other.
const aadSeparator = "|"

// AAD returns the associated-data binding for one message: sender, recipient
// and timestamp joined with explicit separators. Deterministic, so both
// parties recompute it identically from message metadata.
func AAD(senderID, recipientID string, timestamp int64) []byte {
	return []byte(senderID + aadSeparator + recipientID + aadSeparator + strconv.FormatInt(timestamp, 10))
}
