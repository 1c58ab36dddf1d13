package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"sealchat/internal/domain"
)

func openCmd() *cobra.Command {
	var (
		fromID, toID    string
		peerFingerprint string
	)

	cmd := &cobra.Command{
		Use:   "open <peer-public-key-base64> <wire-record-json>",
		Short: "Decrypt a wire record received from a peer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var msg domain.EncryptedMessage
			if err := json.Unmarshal([]byte(args[1]), &msg); err != nil {
				return fmt.Errorf("%w: %v", domain.ErrDeserialization, err)
			}
			pw, err := askPassphrase("Passphrase: ")
			if err != nil {
				return err
			}
			pair, err := appCtx.Identity.Load(pw)
			if err != nil {
				return err
			}
			// Local user is the recipient here, so the session's local ID is
			// --to and the peer is the sender.
			sess, err := appCtx.Sessions.Establish(
				domain.UserID(toID), domain.UserID(fromID),
				pair, args[0], domain.Fingerprint(peerFingerprint),
			)
			if err != nil {
				return err
			}
			plaintext, ts, err := appCtx.Sessions.DecryptMessage(&sess, msg)
			if err != nil {
				return err
			}
			appCtx.Log.Debug().
				Str("session", sess.ID).
				Time("encrypted_at", time.UnixMilli(ts)).
				Msg("message opened")
			fmt.Println(string(plaintext))
			return nil
		},
	}
	cmd.Flags().StringVar(&fromID, "from", "", "sender identifier the message was bound to")
	cmd.Flags().StringVar(&toID, "to", "", "recipient identifier the message was bound to")
	cmd.Flags().StringVar(&peerFingerprint, "peer-fingerprint", "", "expected peer fingerprint (verified against the key)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
