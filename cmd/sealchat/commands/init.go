package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sealchat/internal/encoding"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate an identity key pair and store it encrypted",
		RunE: func(cmd *cobra.Command, args []string) error {
			if appCtx.Store.HasIdentity() {
				return fmt.Errorf("identity already exists in %s", appCtx.Cfg.Home)
			}
			pw, err := askPassphrase("New passphrase: ")
			if err != nil {
				return err
			}
			pair, err := appCtx.Identity.Generate(pw)
			if err != nil {
				return err
			}
			appCtx.Log.Info().Str("curve", appCtx.Cfg.Curve).Msg("identity created")
			fmt.Printf("Fingerprint: %s\nPublic key:  %s\n",
				pair.Fingerprint, encoding.ToBase64(pair.PublicBytes))
			return nil
		},
	}
}
