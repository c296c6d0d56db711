package cmd

import (
	"github.com/spf13/cobra"

	"github.com/iCodeCoolStuff/gcalendar/internal/auth"
)

var setOauthCredentialsCmd = &cobra.Command{
	Use:   "set-oauth-credentials",
	Short: "Set the OAuth 2.0 Client ID json file generated from the GCP console",
	RunE: func(cmd *cobra.Command, args []string) error {
		credentialsPath, err := cmd.Flags().GetString("path")
		if err != nil {
			return err
		}
		return auth.CopyCredentialsFile(credentialsPath)
	},
}

func init() {
	setOauthCredentialsCmd.Flags().StringP("path", "p", "", "Path to the credentials json file")
	setOauthCredentialsCmd.MarkFlagRequired("path")
	RootCmd.AddCommand(setOauthCredentialsCmd)
}
