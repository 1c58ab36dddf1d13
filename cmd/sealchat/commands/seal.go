package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"sealchat/internal/domain"
)

func sealCmd() *cobra.Command {
	var (
		fromID, toID    string
		peerFingerprint string
	)

	cmd := &cobra.Command{
		Use:   "seal <peer-public-key-base64> <message>",
		Short: "Encrypt a message for a peer and print the wire record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := askPassphrase("Passphrase: ")
			if err != nil {
				return err
			}
			pair, err := appCtx.Identity.Load(pw)
			if err != nil {
				return err
			}
			sess, err := appCtx.Sessions.Establish(
				domain.UserID(fromID), domain.UserID(toID),
				pair, args[0], domain.Fingerprint(peerFingerprint),
			)
			if err != nil {
				return err
			}
			msg, err := appCtx.Sessions.EncryptMessage(&sess, []byte(args[1]))
			if err != nil {
				return err
			}
			out, err := json.Marshal(msg)
			if err != nil {
				return err
			}
			appCtx.Log.Debug().Str("session", sess.ID).Msg("message sealed")
			fmt.Println(string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&fromID, "from", "", "sender identifier bound into the message")
	cmd.Flags().StringVar(&toID, "to", "", "recipient identifier bound into the message")
	cmd.Flags().StringVar(&peerFingerprint, "peer-fingerprint", "", "expected peer fingerprint (verified against the key)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
