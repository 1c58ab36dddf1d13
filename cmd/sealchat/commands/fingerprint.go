package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sealchat/internal/encoding"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the identity fingerprint and public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := askPassphrase("Passphrase: ")
			if err != nil {
				return err
			}
			pair, err := appCtx.Identity.Load(pw)
			if err != nil {
				return err
			}
			fmt.Printf("Fingerprint: %s\nPublic key:  %s\n",
				pair.Fingerprint, encoding.ToBase64(pair.PublicBytes))
			return nil
		},
	}
}
