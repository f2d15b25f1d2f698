//go:build !js
// +build !js

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/simukka/recital/common"
	"github.com/simukka/recital/drone"
)

func newDroneCmd(c *cli) *cobra.Command {
	var (
		out     string
		seconds float64
		rate    int
		seed    uint32
	)
	cmd := &cobra.Command{
		Use:   "drone",
		Short: "Render the drone to a WAV file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return errors.New("--out is required")
			}
			if seconds <= 0 || rate <= 0 {
				return fmt.Errorf("invalid length %gs at %d Hz", seconds, rate)
			}
			var src common.Source = common.NewClockRNG()
			if cmd.Flags().Changed("seed") {
				src = common.NewSeededRNG(seed)
			}
			samples := drone.Render(drone.DefaultConfig, src, seconds, rate)

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			if err := drone.WriteWAV(f, samples, rate); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", out, err)
			}
			c.logger.Info("wrote drone", "file", out, "seconds", seconds, "rate", rate, "samples", len(samples))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output WAV file")
	cmd.Flags().Float64Var(&seconds, "seconds", 10, "length in seconds")
	cmd.Flags().IntVar(&rate, "rate", 44100, "sample rate in Hz")
	cmd.Flags().Uint32Var(&seed, "seed", 0, "seed for the modulator rates")
	return cmd
}
