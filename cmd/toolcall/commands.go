package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"skideal/internal/adapters/tools"
)

type registryFactory func(ctx context.Context) (*tools.Registry, func(), error)

// errFailed makes the process exit non-zero after the output was printed.
var errFailed = errors.New("tool call failed")

func newRootCmd(build registryFactory, workers int) *cobra.Command {
	root := &cobra.Command{
		Use:           "toolcall",
		Short:         "Invoke the assistant's tools from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newListCmd(build), newCallCmd(build), newBatchCmd(build, workers))
	return root
}

func withRegistry(cmd *cobra.Command, build registryFactory, run func(*tools.Registry) error) error {
	reg, cleanup, err := build(cmd.Context())
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
		return err
	}
	defer cleanup()
	return run(reg)
}

func newListCmd(build registryFactory) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRegistry(cmd, build, func(reg *tools.Registry) error {
				out := cmd.OutOrStdout()
				if asJSON {
					enc := json.NewEncoder(out)
					enc.SetEscapeHTML(false)
					enc.SetIndent("", "  ")
					return enc.Encode(reg.All())
				}
				for _, t := range reg.All() {
					fmt.Fprintf(out, "%-28s %s\n", t.Name, strings.Join(t.Schema.Required, ","))
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full tool catalog as JSON")
	return cmd
}

func newCallCmd(build registryFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "call <tool> [json-args]",
		Short: "Invoke one tool and print its output",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			callArgs := map[string]any{}
			if len(args) == 2 {
				if err := json.Unmarshal([]byte(args[1]), &callArgs); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), "error: arguments must be a JSON object:", err)
					return err
				}
			}
			return withRegistry(cmd, build, func(reg *tools.Registry) error {
				res := reg.Invoke(cmd.Context(), args[0], callArgs)
				fmt.Fprintln(cmd.OutOrStdout(), res.Output)
				if res.Failed {
					return errFailed
				}
				return nil
			})
		},
	}
}

func newBatchCmd(build registryFactory, workers int) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: `Run calls read from stdin, one {"tool":...,"args":{...}} per line; prints one result per line`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var calls []tools.Call
			sc := bufio.NewScanner(cmd.InOrStdin())
			sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
			for line := 1; sc.Scan(); line++ {
				text := strings.TrimSpace(sc.Text())
				if text == "" {
					continue
				}
				var c tools.Call
				if err := json.Unmarshal([]byte(text), &c); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "error: line %d: %v\n", line, err)
					return err
				}
				calls = append(calls, c)
			}
			if err := sc.Err(); err != nil {
				return err
			}

			return withRegistry(cmd, build, func(reg *tools.Registry) error {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetEscapeHTML(false)
				failed := false
				for _, res := range reg.InvokeBatch(cmd.Context(), calls, workers) {
					if err := enc.Encode(res); err != nil {
						return err
					}
					failed = failed || res.Failed
				}
				if failed {
					return errFailed
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", workers, "concurrent tool calls")
	return cmd
}
