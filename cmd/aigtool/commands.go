// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"

	"github.com/go-air/aiger/aiger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Read and validate an aiger file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.read(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Print the header counts of an aiger file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.read(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			rows := []struct {
				name string
				n    int
			}{
				{"maxvar", int(t.MaxVar)},
				{"inputs", len(t.Inputs)},
				{"latches", len(t.Latches)},
				{"outputs", len(t.Outputs)},
				{"ands", len(t.Ands)},
				{"bad", len(t.Bad)},
				{"constraints", len(t.Constraints)},
				{"justice", len(t.Justice)},
				{"fairness", len(t.Fairness)},
				{"comments", t.NumComments()},
			}
			for _, r := range rows {
				fmt.Fprintf(out, "%-12s %d\n", r.name, r.n)
			}
			fmt.Fprintf(out, "%-12s %t\n", "reencoded", t.IsReencoded())
			return nil
		},
	}
}

func (a *app) convertCmd() *cobra.Command {
	var ascii, binary, strip bool
	cmd := &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Convert between ascii and binary aiger",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if ascii && binary {
				return fmt.Errorf("--ascii and --binary are exclusive")
			}
			t, err := a.read(args[0])
			if err != nil {
				return err
			}
			mode := a.cfg.ModeFor(args[1])
			switch {
			case ascii:
				mode = aiger.Ascii | mode&aiger.Stripped
			case binary:
				mode = aiger.Binary | mode&aiger.Stripped
			}
			if strip {
				mode |= aiger.Stripped
			}
			return a.write(t, args[1], mode)
		},
	}
	cmd.Flags().BoolVarP(&ascii, "ascii", "a", false, "write ascii")
	cmd.Flags().BoolVarP(&binary, "binary", "b", false, "write binary")
	cmd.Flags().BoolVarP(&strip, "strip", "s", false, "omit symbols and comments")
	return cmd
}

func (a *app) reencodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reencode IN OUT",
		Short: "Renumber a model canonically and drop unused gates",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.read(args[0])
			if err != nil {
				return err
			}
			n := len(t.Ands)
			if err := t.Reencode(); err != nil {
				return err
			}
			a.log.Info("reencoded",
				zap.Int("ands", len(t.Ands)),
				zap.Int("dropped", n-len(t.Ands)))
			return a.write(t, args[1], a.cfg.ModeFor(args[1]))
		},
	}
}

func (a *app) stripCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strip IN OUT",
		Short: "Remove symbols and comments",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.read(args[0])
			if err != nil {
				return err
			}
			n := t.StripSymbolsAndComments()
			a.log.Info("stripped", zap.Int("removed", n))
			return a.write(t, args[1], a.cfg.ModeFor(args[1]))
		},
	}
}
