// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"math/rand"

	"github.com/go-air/aiger/aiger"
	"github.com/go-air/aiger/gen"
	"github.com/go-air/aiger/z"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) fuzzCmd() *cobra.Command {
	var (
		seed                           int64
		inputs, latches, ands, outputs int
		check                          bool
	)
	cmd := &cobra.Command{
		Use:   "fuzz OUT",
		Short: "Write a random model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fc := &a.cfg.Fuzz
			fl := cmd.Flags()
			if fl.Changed("seed") {
				fc.Seed = seed
			}
			for _, o := range []struct {
				flag string
				src  int
				dst  *int
			}{
				{"inputs", inputs, &fc.Inputs},
				{"latches", latches, &fc.Latches},
				{"ands", ands, &fc.Ands},
				{"outputs", outputs, &fc.Outputs},
			} {
				if fl.Changed(o.flag) {
					*o.dst = o.src
				}
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			t := gen.RandFrom(rand.NewSource(fc.Seed), a.cfg.FuzzOpts())
			a.log.Debug("generated model",
				zap.Int64("seed", fc.Seed),
				zap.Uint32("maxvar", uint32(t.MaxVar)))

			var sim *simulation
			if check {
				sim = newSimulation(t, rand.New(rand.NewSource(fc.Seed)))
			}
			path := args[0]
			if err := a.write(t, path, a.cfg.ModeFor(path)); err != nil {
				return err
			}
			if sim == nil {
				return nil
			}
			back, err := a.read(path)
			if err != nil {
				return errors.Wrap(err, "read back")
			}
			if err := sim.compare(back); err != nil {
				return err
			}
			a.log.Info("read back model agrees", zap.Int("roots", len(sim.want)))
			return nil
		},
	}
	fl := cmd.Flags()
	fl.Int64Var(&seed, "seed", 1, "random seed")
	fl.IntVar(&inputs, "inputs", 0, "number of inputs")
	fl.IntVar(&latches, "latches", 0, "number of latches")
	fl.IntVar(&ands, "ands", 0, "number of and gates")
	fl.IntVar(&outputs, "outputs", 0, "number of outputs")
	fl.BoolVar(&check, "check", false, "read the result back and compare it by simulation")
	return cmd
}

// simulation holds 64 random input and latch assignments and the values
// they give to the latch next states and properties of a model.
type simulation struct {
	ins, lats []uint64
	want      []uint64
}

func newSimulation(t *aiger.T, r *rand.Rand) *simulation {
	s := &simulation{
		ins:  make([]uint64, len(t.Inputs)),
		lats: make([]uint64, len(t.Latches))}
	for i := range s.ins {
		s.ins[i] = r.Uint64()
	}
	for i := range s.lats {
		s.lats[i] = r.Uint64()
	}
	s.want, _ = s.roots(t)
	return s
}

func (s *simulation) roots(t *aiger.T) ([]uint64, error) {
	if len(t.Inputs) != len(s.ins) || len(t.Latches) != len(s.lats) {
		return nil, errors.New("different number of inputs or latches")
	}
	vals := make([]uint64, t.MaxVar+1)
	for i := range t.Inputs {
		vals[t.Inputs[i].Lit.Var()] = s.ins[i]
	}
	for i := range t.Latches {
		vals[t.Latches[i].Lit.Var()] = s.lats[i]
	}
	if err := t.Eval64(vals); err != nil {
		return nil, err
	}
	var res []uint64
	add := func(m z.Lit) {
		res = append(res, aiger.LitValue64(vals, m))
	}
	for i := range t.Latches {
		add(t.Latches[i].Next)
	}
	for _, syms := range [][]aiger.Symbol{t.Outputs, t.Bad, t.Constraints, t.Fairness} {
		for i := range syms {
			add(syms[i].Lit)
		}
	}
	for i := range t.Justice {
		for _, m := range t.Justice[i].Lits {
			add(m)
		}
	}
	return res, nil
}

func (s *simulation) compare(t *aiger.T) error {
	got, err := s.roots(t)
	if err != nil {
		return err
	}
	if len(got) != len(s.want) {
		return errors.Errorf("%d roots, want %d", len(got), len(s.want))
	}
	for i := range got {
		if got[i] != s.want[i] {
			return errors.Errorf("root %d differs: %#x != %#x", i, got[i], s.want[i])
		}
	}
	return nil
}
