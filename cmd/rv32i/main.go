// Command rv32i runs a hex-encoded RV32I program to completion, tracing
// the fetch/decode/execute/memory/writeback pipeline when asked.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lmarchetti/rv32i/internal/config"
	"github.com/lmarchetti/rv32i/internal/cpu"
	"github.com/lmarchetti/rv32i/internal/trace"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		traceEnabled bool
		configPath   string
	)

	cmd := &cobra.Command{
		Use:   "rv32i <program.hex>",
		Short: "Run a hex-encoded RV32I program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], traceEnabled, configPath)
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVarP(&traceEnabled, "trace", "t", false, "log every pipeline stage")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a TOML machine-size override file")
	return cmd
}

func run(path string, traceEnabled bool, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("rv32i: loading config: %w", err)
	}

	fp, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("rv32i: %w", err)
	}
	defer fp.Close()

	proc := cpu.New(cfg)
	proc.SetTracer(trace.New(traceEnabled))

	if err := proc.LoadHex(fp, cfg.IMEMBase); err != nil {
		return fmt.Errorf("rv32i: loading program: %w", err)
	}
	if err := proc.Run(); err != nil {
		return fmt.Errorf("rv32i: %w", err)
	}
	return nil
}
