package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// newVerifyCmd signs or verifies the SHA-256 digest of a merge output
// file with an SSH key, so a merge result can be attested and later
// checked for tampering — the diff3merge analogue of the teacher's
// SSH commit signing (cmd/got/signing_ssh.go), applied to a merge
// result instead of a commit payload.
func newVerifyCmd() *cobra.Command {
	var keyPath, signature string

	cmd := &cobra.Command{
		Use:   "verify <merged-file>",
		Short: "Sign or verify the digest of a merge result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %q: %w", args[0], err)
			}

			if signature != "" {
				if err := verifyDigest(string(content), signature); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "ok: signature verified")
				return nil
			}

			cfg, err := loadConfigForCmd(cmd)
			if err != nil {
				return err
			}
			key := keyPath
			if key == "" {
				key = cfg.Sign.KeyPath
			}
			sig, err := signDigest(key, string(content))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sig)
			return nil
		},
	}
	cmd.Flags().StringVar(&keyPath, "key", "", "SSH private key to sign with (default: config sign.key_path, then ~/.ssh/id_ed25519 etc.)")
	cmd.Flags().StringVar(&signature, "check", "", "verify this signature instead of signing")
	return cmd
}
