package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"donna_landing_go/services/landing"

	"github.com/spf13/cobra"
)

func simulateCmd() *cobra.Command {
	var (
		contentPath string
		scroll      string
		opts        landing.SimulationOptions
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Replay the page widgets over a synthetic viewport and print the timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			offsets, err := parseOffsets(scroll)
			if err != nil {
				return err
			}
			opts.Scroll = offsets

			content, err := landing.LoadContent(contentPath)
			if err != nil {
				return err
			}
			page, err := landing.Build(content, landing.DefaultTimings(), nil)
			if err != nil {
				return err
			}

			frames, err := landing.Simulate(page, opts)
			if err != nil {
				return err
			}
			printFrames(cmd.OutOrStdout(), page, frames)
			return nil
		},
	}

	cmd.Flags().StringVar(&contentPath, "content", "", "Landing content YAML (default: embedded content)")
	cmd.Flags().StringVar(&scroll, "scroll", "0", "Comma-separated scroll offsets in pixels")
	cmd.Flags().DurationVar(&opts.ScrollEvery, "scroll-every", time.Second, "Time between scroll offsets")
	cmd.Flags().DurationVar(&opts.Duration, "duration", 10*time.Second, "Virtual duration of the visit")
	cmd.Flags().DurationVar(&opts.Sample, "sample", 500*time.Millisecond, "Interval between printed frames")
	cmd.Flags().Float64Var(&opts.ViewportHeight, "height", 800, "Viewport height in pixels")
	return cmd
}

func parseOffsets(s string) ([]float64, error) {
	var offsets []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid scroll offset %q: %w", part, err)
		}
		offsets = append(offsets, v)
	}
	return offsets, nil
}

func printFrames(w io.Writer, page *landing.Page, frames []landing.Frame) {
	fmt.Fprintf(w, "%8s %7s %-6s %-7s %-22s %s\n", "t", "scroll", "navbar", "visible", "counters", "carousel")
	for _, f := range frames {
		navbar := "clear"
		if f.Page.NavbarSolid {
			navbar = "solid"
		}

		var counters []string
		for _, s := range page.Content.Stats {
			counters = append(counters, f.Counters["stat-"+s.ID].Display)
		}

		carousel := strconv.Itoa(f.Carousel.Active+1) + "/" + strconv.Itoa(f.Carousel.Len)
		if f.Carousel.Transitioning {
			carousel += " (moving)"
		}

		fmt.Fprintf(w, "%8s %7.0f %-6s %3d/%-3d %-22s %s\n",
			f.At, f.Scroll, navbar, len(f.Visible), len(page.Blocks())-len(f.Counters),
			strings.Join(counters, " "), carousel)
	}
}
