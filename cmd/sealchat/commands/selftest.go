package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sealchat/internal/crypto"
	"sealchat/internal/selftest"
)

func selftestCmd() *cobra.Command {
	var allCurves bool

	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Run the generate-exchange-derive-encrypt-decrypt round trip",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := []string{appCtx.Cfg.Curve}
			if allCurves {
				names = []string{"x25519", "p256", "p384"}
			}

			ok := true
			for _, name := range names {
				curve, err := crypto.CurveByName(name)
				if err != nil {
					return err
				}
				log := appCtx.Log.With().Str("curve", name).Logger()
				for _, st := range selftest.Run(curve) {
					if st.OK {
						log.Info().Str("step", st.Name).Msg("ok")
						continue
					}
					ok = false
					log.Error().Str("step", st.Name).Err(st.Err).Msg("failed")
				}
			}
			if !ok {
				return fmt.Errorf("self-test failed")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&allCurves, "all-curves", false, "run against every supported curve")
	return cmd
}
