package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the key pair for device migration",
		Long: "Export writes the portable key-pair record, private key included.\n" +
			"Move it between devices over a trusted channel only; never send it\n" +
			"over a network or store it unencrypted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := askPassphrase("Passphrase: ")
			if err != nil {
				return err
			}
			pair, err := appCtx.Identity.Load(pw)
			if err != nil {
				return err
			}
			rec, err := appCtx.Identity.Export(pair)
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
			appCtx.Log.Info().Str("path", outPath).Msg("key pair exported")
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	return cmd
}
