package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mentord/pkg/types"
)

var errUnreachable = errors.New("upstream not reachable")

func newProbeCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "probe",
		Short:   "Check upstream reachability once and print the health report",
		Example: "  mentord probe --upstream-host 10.0.0.5",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, svc, err := setup(cmd, f)
			if err != nil {
				return err
			}
			h := svc.Health(cmd.Context())
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(h); err != nil {
				return err
			}
			if !h.OllamaReachable {
				return errUnreachable
			}
			return nil
		},
	}
}

func newAskCmd(f *rootFlags) *cobra.Command {
	var model string
	cmd := &cobra.Command{
		Use:     "ask <message...>",
		Short:   "Send one message through the mentor and print the reply",
		Example: "  mentord ask --model llama3.2:1b why does my goroutine leak",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, svc, err := setup(cmd, f)
			if err != nil {
				return err
			}
			resp, err := svc.Chat(cmd.Context(), types.ChatRequest{Message: strings.Join(args, " "), Model: model})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), resp.Reply)
			return err
		},
	}
	cmd.Flags().StringVar(&model, "model", "", "Model to ask; empty means the default model")
	return cmd
}
