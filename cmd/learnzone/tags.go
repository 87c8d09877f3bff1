package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hajar-aswad/Learnzone/pkg/api"
)

func newTagsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "tags",
		Aliases:     []string{"tag"},
		Short:       "Manage content tags",
		Annotations: page("/dashboard/tags"),
	}

	var create api.CreateTagRequest
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tag, err := a.client.Dashboard().CreateTag(cmd.Context(), create)
			if err != nil {
				return a.fail(err)
			}
			return a.print(tag)
		},
	}
	createCmd.Flags().StringVar(&create.Name, "name", "", "tag name")
	createCmd.Flags().Int64Var(&create.TypeID, "type", 0, "content type id")

	var name string
	var typeID int64
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the name or content type of a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := api.ParseID(args[0])
			if err != nil {
				return err
			}
			var in api.UpdateTagRequest
			if cmd.Flags().Changed("name") {
				in.Name = &name
			}
			if cmd.Flags().Changed("type") {
				in.TypeID = &typeID
			}
			tag, err := a.client.Dashboard().UpdateTag(cmd.Context(), id, in)
			if err != nil {
				return a.fail(err)
			}
			return a.print(tag)
		},
	}
	updateCmd.Flags().StringVar(&name, "name", "", "new tag name")
	updateCmd.Flags().Int64Var(&typeID, "type", 0, "new content type id")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all tags",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				tags, err := a.client.Dashboard().Tags(cmd.Context())
				if err != nil {
					return a.fail(err)
				}
				return a.print(tags)
			},
		},
		&cobra.Command{
			Use:   "show <id>",
			Short: "Show one tag",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := api.ParseID(args[0])
				if err != nil {
					return err
				}
				tag, err := a.client.Dashboard().Tag(cmd.Context(), id)
				if err != nil {
					return a.fail(err)
				}
				return a.result(tag, tag == nil)
			},
		},
		&cobra.Command{
			Use:   "by-type",
			Short: "List tags grouped by content type",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				res, err := a.client.Dashboard().TagsByType(cmd.Context())
				if err != nil {
					return a.fail(err)
				}
				return a.print(res.TagsByType)
			},
		},
		createCmd,
		updateCmd,
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a tag",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := api.ParseID(args[0])
				if err != nil {
					return err
				}
				if err := a.client.Dashboard().DeleteTag(cmd.Context(), id); err != nil {
					return a.fail(err)
				}
				fmt.Fprintf(a.errOut, "Tag %d deleted.\n", id)
				return nil
			},
		},
	)
	return cmd
}
