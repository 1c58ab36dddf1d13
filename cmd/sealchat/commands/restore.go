package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sealchat/internal/domain"
)

func restoreCmd() *cobra.Command {
	var inPath string

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore the identity key from a password-protected backup",
		RunE: func(cmd *cobra.Command, args []string) error {
			if inPath == "" {
				return fmt.Errorf("backup file required (-i)")
			}
			data, err := os.ReadFile(inPath)
			if err != nil {
				return err
			}
			var rec domain.EncryptedKeyBackup
			if err := json.Unmarshal(data, &rec); err != nil {
				return fmt.Errorf("%w: %v", domain.ErrDeserialization, err)
			}
			backupPassword, err := askSecret("Backup password: ")
			if err != nil {
				return err
			}
			pair, err := appCtx.Identity.RestoreBackup(rec, backupPassword)
			if err != nil {
				return err
			}
			pw, err := askPassphrase("New passphrase for the stored identity: ")
			if err != nil {
				return err
			}
			if err := appCtx.Store.SaveIdentity(pw, pair); err != nil {
				return err
			}
			appCtx.Log.Info().Str("fingerprint", pair.Fingerprint.String()).Msg("identity restored")
			fmt.Printf("Fingerprint: %s\n", pair.Fingerprint)
			return nil
		},
	}
	cmd.Flags().StringVarP(&inPath, "in", "i", "", "backup file")
	return cmd
}
