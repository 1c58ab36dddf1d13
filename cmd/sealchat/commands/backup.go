package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func backupCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Write a password-protected backup of the identity key",
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := askPassphrase("Passphrase: ")
			if err != nil {
				return err
			}
			pair, err := appCtx.Identity.Load(pw)
			if err != nil {
				return err
			}
			backupPassword, err := askSecret("Backup password: ")
			if err != nil {
				return err
			}
			rec, err := appCtx.Identity.CreateBackup(pair, backupPassword)
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(rec, "", "  ")
			if err != nil {
				return err
			}
			if outPath == "" || outPath == "-" {
				fmt.Println(string(data))
				return nil
			}
			if err := os.WriteFile(outPath, data, 0o600); err != nil {
				return err
			}
			appCtx.Log.Info().Str("path", outPath).Str("fingerprint", rec.Fingerprint).Msg("backup written")
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	return cmd
}
