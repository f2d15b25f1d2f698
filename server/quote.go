//go:build !js
// +build !js

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simukka/recital/common"
	"github.com/simukka/recital/content"
	"github.com/simukka/recital/quote"
	"github.com/simukka/recital/storage"
)

func newQuoteCmd(c *cli) *cobra.Command {
	var (
		lang  string
		state string
		reset bool
	)
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print today's quote",
		Long:  `Print the quote of the day. The choice is kept in a state file so every run on the same day prints the same quote.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.cfg.StatePath
			if cmd.Flags().Changed("state") {
				path = state
			}
			if path == "" {
				p, err := storage.DefaultFilePath()
				if err != nil {
					return err
				}
				path = p
			}
			lib, err := content.Load()
			if err != nil {
				return fmt.Errorf("loading content: %w", err)
			}
			store := storage.NewFile(path)
			sel := quote.NewSelector(lib, store,
				quote.WithSource(common.NewClockRNG()),
				quote.WithLogf(c.logger.Debugf),
			)
			if reset {
				if err := sel.Reset(); err != nil {
					return err
				}
				c.logger.Debug("cleared daily quote", "state", path)
			}

			q, ok := sel.Today(content.ParseLang(lang))
			if !ok {
				fmt.Fprintln(c.stdout, "(no quotes)")
				return nil
			}
			fmt.Fprintln(c.stdout, q.Text)
			fmt.Fprintf(c.stdout, "  %s\n", q.Source)
			return nil
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "en", "display language (en, ar, hi, es or a locale such as ar-EG)")
	cmd.Flags().StringVar(&state, "state", "", "state file (default: user config dir)")
	cmd.Flags().BoolVar(&reset, "reset", false, "forget today's choice and draw again")
	return cmd
}
