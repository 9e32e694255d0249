package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/xy-planning-network/hackathons/auth"
)

func (a *app) loginCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and keep the token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withTokenStore(func(ts auth.TokenStore) error {
				if _, err := auth.Login(cmd.Context(), a.client, ts, username, password); err != nil {
					return err
				}

				return a.print(map[string]bool{"authenticated": true})
			})
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "username to log in with")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password to log in with")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke and forget the kept token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withTokenStore(func(ts auth.TokenStore) error {
				if err := auth.Logout(cmd.Context(), a.client, ts); err != nil && !errors.Is(err, auth.ErrNoToken) {
					return err
				}

				return a.print(map[string]bool{"authenticated": false})
			})
		},
	}
}
