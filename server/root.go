//go:build !js
// +build !js

package main

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// cli holds what every subcommand shares once the root has parsed its
// configuration.
type cli struct {
	cfg    Config
	logger *log.Logger
	stdout io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdout: stdout}
	var logLevel string

	root := &cobra.Command{
		Use:           "recital",
		Short:         "Serve the recital page and play with its audio from the terminal",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			logger, err := newLogger(stderr, cfg.LogLevel)
			if err != nil {
				return err
			}
			c.cfg = cfg
			c.logger = logger
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")

	root.AddCommand(newServeCmd(c), newQuoteCmd(c), newDroneCmd(c))
	return root
}
