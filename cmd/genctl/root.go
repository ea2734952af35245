package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lexiblog/lexiblog-api/internal/config"
	"github.com/lexiblog/lexiblog-api/internal/domain"
	"github.com/lexiblog/lexiblog-api/internal/platform/llm"
	"github.com/lexiblog/lexiblog-api/internal/platform/logger"
	"github.com/lexiblog/lexiblog-api/internal/prompt"
	"github.com/lexiblog/lexiblog-api/internal/redact"
	"github.com/lexiblog/lexiblog-api/internal/service"
	"github.com/spf13/cobra"
)

// serviceBuilder creates the ContentService used by the run command. Logs go
// to logOut so stdout carries only the result.
type serviceBuilder func(logOut io.Writer) (service.ContentService, error)

// newDispatcherFromConfig builds a Dispatcher from the same configuration
// sources as the server.
func newDispatcherFromConfig(logOut io.Writer) (service.ContentService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.New(logOut, cfg.Server.LogLevel)

	factory, err := llm.NewFactory(cfg.LLM, log)
	if err != nil {
		return nil, err
	}

	return service.NewDispatcher(factory, log, nil, service.DispatcherConfig{
		Model:   cfg.LLM.ModelName,
		Timeout: cfg.LLM.Timeout(),
	})
}

func newRootCmd(build serviceBuilder) *cobra.Command {
	root := &cobra.Command{
		Use:   "genctl",
		Short: "Run generation requests from the command line",
		Long: `genctl sends generation requests through the same dispatcher as the
lexiblog API server and prints the JSON result.

Configuration is read like the server's: LEXIBLOG_* environment variables,
.env.local / .env, and an optional config.yaml.`,
		SilenceUsage: true,
	}

	root.AddCommand(newRunCmd(build), newVeo3Cmd(), newActionsCmd())
	return root
}

func newRunCmd(build serviceBuilder) *cobra.Command {
	var fields map[string]string

	cmd := &cobra.Command{
		Use:   "run <action>",
		Short: "Dispatch one action and print its JSON result",
		Example: `  genctl run generateSearchInsights --set query=goroutines
  genctl run generateArticleContent --set title="Channels em Go" --set format=html
  genctl run generateFullPost --set topic="Context cancellation"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := build(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			result, err := svc.Dispatch(cmd.Context(), args[0], domain.Payload(fields))
			if err != nil {
				return fmt.Errorf("%s failed: %s", args[0], redact.Error(err))
			}

			return writeJSON(cmd.OutOrStdout(), result.Body())
		},
	}

	cmd.Flags().StringToStringVar(&fields, "set", nil, "payload field as key=value (repeatable)")
	return cmd
}

func newVeo3Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "veo3 <item name>",
		Short: "Print the item explainer prompt without calling a model",
		Example: `  genctl veo3 banana
  genctl veo3 sistema imunologico`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), prompt.Veo3Prompt(strings.Join(args, " ")))
			return err
		},
	}
}

func newActionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "List the supported actions and their result fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, op := range domain.Operations() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", op, op.ResultField()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
