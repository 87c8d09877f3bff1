package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hajar-aswad/Learnzone/pkg/guard"
	"github.com/hajar-aswad/Learnzone/pkg/session"
)

func newLoginCmd(a *app) *cobra.Command {
	var creds session.Credentials
	var passwordStdin bool
	cmd := &cobra.Command{
		Use:         "login",
		Short:       "Sign in and store the session",
		Annotations: page(guard.LoginPath),
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if passwordStdin {
				line, err := bufio.NewReader(a.in).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read password: %w", err)
				}
				creds.Password = strings.TrimRight(line, "\r\n")
			}

			res, err := a.client.Login(ctx, creds)
			if err != nil {
				return err
			}
			if !res.Success {
				return errReported
			}
			return a.print(res.User)
		},
	}
	cmd.Flags().StringVar(&creds.Email, "email", "", "account email")
	cmd.Flags().StringVar(&creds.Password, "password", "", "account password")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read the password from stdin")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.client.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(a.errOut, "Signed out.")
			return nil
		},
	}
}

type status struct {
	Authenticated bool     `json:"authenticated"`
	Role          string   `json:"role,omitempty"`
	UserID        string   `json:"userId,omitempty"`
	ExpiresAt     string   `json:"expiresAt,omitempty"`
	ExpiresSoon   bool     `json:"expiresSoon,omitempty"`
	Pages         []string `json:"pages,omitempty"`
	Backend       string   `json:"backend"`
	BackendError  string   `json:"backendError,omitempty"`
}

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			s := a.client.Session()
			st := status{Authenticated: s.CheckAuth(ctx)}
			if st.Authenticated {
				st.Role = s.UserRole()
				st.UserID, _ = s.UserID(ctx)
				if exp, ok := s.TokenExpiration(ctx); ok {
					st.ExpiresAt = exp.Format("2006-01-02 15:04:05 MST")
				}
				st.ExpiresSoon = s.WillExpireSoon(ctx, a.client.Config().Session.ExpiryThreshold)
			}
			st.Backend = a.client.Config().SessionBackend
			if err := a.client.Healthcheck(ctx); err != nil {
				st.BackendError = err.Error()
			}
			for _, r := range guard.Routes() {
				if r.Redirect == "" && a.client.Guard().Resolve(ctx, r, r.Path).Allowed {
					st.Pages = append(st.Pages, r.Path)
				}
			}
			return a.print(st)
		},
	}
}
