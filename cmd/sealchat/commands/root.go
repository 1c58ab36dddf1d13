package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sealchat/internal/app"
)

var (
	configPath string
	home       string
	passphrase string
	curveName  string

	appCtx *app.App
)

// Execute runs the CLI.
func Execute() error {
	root := &cobra.Command{
		Use:           "sealchat",
		Short:         "Cryptographic core for end-to-end encrypted chat",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				var err error
				if path, err = app.DefaultConfigPath(); err != nil {
					return err
				}
			}
			cfg, err := app.LoadConfig(path)
			if err != nil {
				return err
			}
			if home != "" {
				cfg.Home = home
			}
			if cfg.Home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				cfg.Home = filepath.Join(dir, ".sealchat")
			}
			if curveName != "" {
				cfg.Curve = curveName
			}
			if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
				return err
			}
			appCtx, err = app.New(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.sealchat/config.yaml)")
	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.sealchat)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the stored identity")
	root.PersistentFlags().StringVar(&curveName, "curve", "", "agreement curve: x25519, p256 or p384")

	root.AddCommand(
		initCmd(),
		fingerprintCmd(),
		exportCmd(),
		backupCmd(),
		restoreCmd(),
		sealCmd(),
		openCmd(),
		selftestCmd(),
	)
	return root.Execute()
}

// askPassphrase returns the -p flag value or prompts without echo.
func askPassphrase(prompt string) (string, error) {
	if passphrase != "" {
		return passphrase, nil
	}
	return askSecret(prompt)
}

// askSecret always prompts, ignoring the -p flag. Used for backup passwords,
// which are distinct from the identity passphrase.
func askSecret(prompt string) (string, error) {
	defer func() { _, _ = fmt.Fprintln(os.Stderr) }()
	fmt.Fprint(os.Stderr, prompt)
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", err
	}
	return string(pw), nil
}
