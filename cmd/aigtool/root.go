// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"net/http"
	_ "net/http/pprof"

	"github.com/go-air/aiger/aiger"
	"github.com/go-air/aiger/aigfile"
	"github.com/go-air/aiger/internal/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app is the state shared by all commands.
type app struct {
	cfgPath   string
	verbose   bool
	pprofAddr string

	cfg *config.Config
	log *zap.Logger
}

func newLogger(c *config.LogConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.Format == "console" {
		zc.Encoding = "console"
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	lvl, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "aigtool",
		Short:         "aigtool checks, converts and generates aiger models",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log, err = newLogger(&cfg.Log, a.verbose)
			if err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			if a.pprofAddr != "" {
				go func() {
					a.log.Info("serving pprof", zap.String("addr", a.pprofAddr))
					if err := http.ListenAndServe(a.pprofAddr, nil); err != nil {
						a.log.Warn("pprof server stopped", zap.Error(err))
					}
				}()
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgPath, "config", "", "YAML configuration file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")
	flags.StringVar(&a.pprofAddr, "pprof", "", "address to serve http profile (eg :6060)")

	root.AddCommand(
		a.checkCmd(),
		a.infoCmd(),
		a.convertCmd(),
		a.reencodeCmd(),
		a.stripCmd(),
		a.fuzzCmd())
	return root
}

func (a *app) read(path string) (*aiger.T, error) {
	return aigfile.Read(path, a.log)
}

func (a *app) write(t *aiger.T, path string, mode aiger.Mode) error {
	a.log.Info("writing model",
		zap.String("path", path),
		zap.Uint32("maxvar", uint32(t.MaxVar)),
		zap.Int("ands", len(t.Ands)))
	return aigfile.Write(t, path, mode, a.log)
}
