package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	learnzone "github.com/hajar-aswad/Learnzone"
	"github.com/hajar-aswad/Learnzone/pkg/apiclient"
	"github.com/hajar-aswad/Learnzone/pkg/config"
	"github.com/hajar-aswad/Learnzone/pkg/logger"
	"github.com/hajar-aswad/Learnzone/pkg/notify"
	"github.com/hajar-aswad/Learnzone/pkg/requestid"
	"github.com/hajar-aswad/Learnzone/pkg/validator"
)

// errReported marks failures already shown to the user as a notification.
var errReported = errors.New("learnzone.reported")

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

type app struct {
	in       io.Reader
	out      io.Writer
	errOut   io.Writer
	envFiles []string
	format   string
	verbose  bool

	client    *learnzone.Client
	loggedOut bool
}

func (a *app) open(ctx context.Context) error {
	var opts []config.Option
	if len(a.envFiles) > 0 {
		opts = append(opts, config.WithEnvFiles(a.envFiles...))
	}
	cfg, err := learnzone.LoadConfig(opts...)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	switch {
	case a.verbose:
		cfg.Log.Level = "debug"
	case os.Getenv(learnzone.EnvPrefix+"LOG_LEVEL") == "":
		cfg.Log.Level = "error"
	}
	log := logger.New(
		logger.WithConfig(cfg.Log),
		logger.WithOutput(a.errOut),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	a.client, err = learnzone.New(ctx, cfg,
		learnzone.WithLogger(log),
		learnzone.WithNotifier(notify.NewWriterNotifier(a.errOut)),
		learnzone.WithNavigator(apiclient.NavigatorFunc(func(context.Context, string) {
			a.loggedOut = true
			fmt.Fprintln(a.errOut, "Your session has ended. Run `learnzone login` to sign in again.")
		})),
	)
	if err != nil {
		return err
	}
	a.client.Restore(ctx)
	return nil
}

func (a *app) close() error {
	if a.client == nil {
		return nil
	}
	err := a.client.Close()
	a.client = nil
	return err
}

// print writes v in the selected output format.
func (a *app) print(v any) error {
	switch a.format {
	case formatYAML:
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(yamlValue(v)); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}

// yamlValue routes v through JSON so the YAML output uses the wire field
// names and raw JSON payloads are expanded.
func yamlValue(v any) any {
	raw, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return v
	}
	return generic
}

// result prints v, or reports that the read produced nothing. Swallowed
// reads have already been notified, and a forced logout has printed its hint.
func (a *app) result(v any, empty bool) error {
	if empty {
		if a.loggedOut {
			return errReported
		}
		fmt.Fprintln(a.errOut, "No data.")
		return nil
	}
	return a.print(v)
}

// fail hides errors the notifier has already printed.
func (a *app) fail(err error) error {
	if err == nil {
		return nil
	}
	if a.loggedOut || apiclient.IsPipelineError(err) || isValidation(err) {
		return errReported
	}
	return err
}

func isValidation(err error) bool { return validator.IsValidationError(err) }
