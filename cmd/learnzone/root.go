package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// pageAnnotation names the dashboard page a command stands for. The route
// guard decides whether the command may run.
const pageAnnotation = "learnzone/page"

func page(path string) map[string]string {
	return map[string]string{pageAnnotation: path}
}

// authorize resolves the page of cmd, or of its closest parent that has one.
func (a *app) authorize(cmd *cobra.Command) error {
	for c := cmd; c != nil; c = c.Parent() {
		path, ok := c.Annotations[pageAnnotation]
		if !ok {
			continue
		}
		d := a.client.Guard().Navigate(cmd.Context(), path)
		if d.Allowed {
			return nil
		}
		switch d.Reason {
		case "unauthenticated":
			fmt.Fprintln(a.errOut, "Not signed in. Run `learnzone login` first.")
		case "authenticated":
			fmt.Fprintln(a.errOut, "Already signed in. Run `learnzone logout` first.")
		case "forbidden":
			fmt.Fprintf(a.errOut, "Your role (%s) cannot use %q.\n", a.client.Session().UserRole(), cmd.CommandPath())
		default:
			fmt.Fprintf(a.errOut, "%q is not available (%s).\n", cmd.CommandPath(), d.Reason)
		}
		return errReported
	}
	return nil
}

// execute runs one invocation and releases the client afterwards.
func execute(ctx context.Context, in io.Reader, out, errOut io.Writer, args []string) error {
	a := &app{in: in, out: out, errOut: errOut}
	root := newRootCmd(a)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return errors.Join(err, a.close())
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "learnzone",
		Short:         "Administer the Learnzone platform from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch a.format {
			case formatJSON, formatYAML:
			default:
				return fmt.Errorf("unknown output format %q", a.format)
			}
			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			return a.authorize(cmd)
		},
	}
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	flags := root.PersistentFlags()
	flags.StringSliceVar(&a.envFiles, "env-file", nil, "load settings from these .env files")
	flags.StringVarP(&a.format, "output", "o", formatJSON, "output format: json or yaml")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log requests and responses")

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newStatusCmd(a),
		newRequestsCmd(a),
		newAccountsCmd(a, "teachers", "List approved teachers"),
		newAccountsCmd(a, "students", "List students"),
		newFileCmd(a),
		newTagsCmd(a),
		newTypesCmd(a),
		newVideosCmd(a),
		newStatsCmd(a),
		newEndpointsCmd(a),
	)
	return root
}
