package cmd

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"linkforge/internal/lockbox"
	"linkforge/internal/profile"
)

var lockLinkID string

var lockCmd = &cobra.Command{
	Use:   "lock <url>",
	Short: "Password-protect a URL",
	Long: `Encrypts a URL with a password and prints the resulting token. The
token can be pasted into a link's encryptedUrl field, or written
directly into the profile with --link; either way the plaintext URL
never appears in the exported page, and viewers unlock it in the
browser with the password.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rawURL := args[0]

		password, err := promptPassword("Password", true)
		if err != nil {
			return err
		}

		token, err := lockbox.EncryptURL(rawURL, password)
		if err != nil {
			return err
		}

		if lockLinkID == "" {
			fmt.Println(token)
			return nil
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		doc, err := profile.Load(cfg.ProfilePath)
		if err != nil {
			return err
		}

		found := false
		for i := range doc.Links {
			if doc.Links[i].ID == lockLinkID {
				doc.Links[i].IsLocked = true
				doc.Links[i].EncryptedURL = token
				doc.Links[i].URL = ""
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("no link with id %q in %s", lockLinkID, cfg.ProfilePath)
		}

		if err := doc.Save(cfg.ProfilePath); err != nil {
			return err
		}
		fmt.Printf("Locked link %s in %s\n", lockLinkID, cfg.ProfilePath)
		return nil
	},
}

var unlockCmd = &cobra.Command{
	Use:   "unlock <token>",
	Short: "Decrypt a password-protected URL token",
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := promptPassword("Password", false)
		if err != nil {
			return err
		}

		rawURL, err := lockbox.DecryptURL(args[0], password)
		if err != nil {
			return err
		}
		fmt.Println(rawURL)
		return nil
	},
	Args: cobra.ExactArgs(1),
}

// promptPassword reads a masked password, optionally asking twice to
// catch typos before anything is encrypted with it.
func promptPassword(label string, confirm bool) (string, error) {
	prompt := promptui.Prompt{
		Label: label,
		Mask:  '*',
		Validate: func(s string) error {
			if s == "" {
				return fmt.Errorf("password must not be empty")
			}
			return nil
		},
	}
	password, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}

	if confirm {
		again := promptui.Prompt{Label: label + " (again)", Mask: '*'}
		repeat, err := again.Run()
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		if repeat != password {
			return "", fmt.Errorf("passwords do not match")
		}
	}
	return password, nil
}

func init() {
	lockCmd.Flags().StringVar(&lockLinkID, "link", "", "write the token into this link id in the profile")
	rootCmd.AddCommand(lockCmd)
	rootCmd.AddCommand(unlockCmd)
}
