package main

import (
	"github.com/spf13/cobra"

	"github.com/hajar-aswad/Learnzone/pkg/api"
)

func newTypesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "types",
		Aliases:     []string{"type"},
		Short:       "Manage content types",
		Annotations: page("/dashboard/content-types"),
	}

	var create api.CreateTypeRequest
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a content type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := a.client.Dashboard().CreateContentType(cmd.Context(), create)
			if err != nil {
				return a.fail(err)
			}
			return a.print(t)
		},
	}
	createCmd.Flags().StringVar(&create.Name, "name", "", "content type name")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List content types",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				types, err := a.client.Dashboard().ContentTypes(cmd.Context())
				if err != nil {
					return a.fail(err)
				}
				return a.print(types)
			},
		},
		createCmd,
	)
	return cmd
}

func newVideosCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "videos",
		Aliases:     []string{"video"},
		Short:       "Review course videos awaiting approval",
		Annotations: page("/dashboard/content-requests"),
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List courses with unapproved videos",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				list, err := a.client.Dashboard().ContentRequests(cmd.Context())
				if err != nil {
					return a.fail(err)
				}
				return a.print(list)
			},
		},
		reviewCmd(a, "approve", "Approve a course video", func(cmd *cobra.Command, id int64) (any, error) {
			return a.client.Dashboard().ApproveVideo(cmd.Context(), id)
		}),
		reviewCmd(a, "disapprove", "Disapprove a course video", func(cmd *cobra.Command, id int64) (any, error) {
			return a.client.Dashboard().DisapproveVideo(cmd.Context(), id)
		}),
	)
	return cmd
}
