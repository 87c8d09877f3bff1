package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hajar-aswad/Learnzone/pkg/guard"
)

func newFileCmd(a *app) *cobra.Command {
	var dest string
	cmd := &cobra.Command{
		Use:         "file <name>",
		Annotations: page(guard.LandingPath),
		Short:       "Download a file uploaded by a teacher",
		Args:        cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.client.Dashboard().File(cmd.Context(), args[0])
			if err != nil {
				return a.fail(err)
			}
			if f == nil {
				return a.result(nil, true)
			}
			if dest == "" {
				dest = f.Name
			}
			if dest == "-" {
				_, err = a.out.Write(f.Data)
				return err
			}
			if err := os.WriteFile(dest, f.Data, 0o644); err != nil {
				return fmt.Errorf("save %s: %w", dest, err)
			}
			fmt.Fprintf(a.errOut, "Saved %s (%s, %d bytes).\n", dest, f.ContentType, len(f.Data))
			return nil
		},
	}
	cmd.Flags().StringVarP(&dest, "save-to", "s", "", `destination path, "-" for stdout`)
	return cmd
}
