package main

import (
	"github.com/spf13/cobra"

	"github.com/hajar-aswad/Learnzone/pkg/api"
	"github.com/hajar-aswad/Learnzone/pkg/guard"
)

func newRequestsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "requests",
		Aliases:     []string{"request", "req"},
		Short:       "Review teacher registration requests",
		Annotations: page(guard.LandingPath),
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List pending teacher requests",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				list, err := a.client.Dashboard().TeacherRequests(cmd.Context())
				if err != nil {
					return a.fail(err)
				}
				return a.result(list, list == nil)
			},
		},
		&cobra.Command{
			Use:   "show <id>",
			Short: "Show one teacher request with the applicant profile",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := api.ParseID(args[0])
				if err != nil {
					return err
				}
				detail, err := a.client.Dashboard().TeacherRequest(cmd.Context(), id)
				if err != nil {
					return a.fail(err)
				}
				return a.result(detail, detail == nil)
			},
		},
		reviewCmd(a, "approve", "Approve a teacher request", a.approveRequest),
		reviewCmd(a, "reject", "Reject a teacher request", a.rejectRequest),
	)
	return cmd
}

func (a *app) approveRequest(cmd *cobra.Command, id int64) (any, error) {
	return a.client.Dashboard().ApproveTeacherRequest(cmd.Context(), id)
}

func (a *app) rejectRequest(cmd *cobra.Command, id int64) (any, error) {
	return a.client.Dashboard().RejectTeacherRequest(cmd.Context(), id)
}

// reviewCmd builds a "<verb> <id>" command around a mutation.
func reviewCmd(a *app, use, short string, fn func(*cobra.Command, int64) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := api.ParseID(args[0])
			if err != nil {
				return err
			}
			res, err := fn(cmd, id)
			if err != nil {
				return a.fail(err)
			}
			return a.print(res)
		},
	}
}

func newAccountsCmd(a *app, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:         use,
		Annotations: page("/dashboard/" + use),
		Short:       short,
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				list []api.Account
				err  error
			)
			if use == "teachers" {
				list, err = a.client.Dashboard().ApprovedTeachers(cmd.Context())
			} else {
				list, err = a.client.Dashboard().Students(cmd.Context())
			}
			if err != nil {
				return a.fail(err)
			}
			return a.result(list, list == nil)
		},
	}
}
