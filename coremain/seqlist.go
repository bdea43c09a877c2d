/*
 * Copyright (C) 2020-2022, IrineSistiana
 *
 * This file is part of mosdns.
 *
 * mosdns is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * mosdns is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package coremain

import (
	"fmt"
	"io"
	"os"

	"github.com/Brandon-Watkins/CS2235-PA02/mlog"
	"github.com/Brandon-Watkins/CS2235-PA02/pkg/concurrent_list"
	"github.com/Brandon-Watkins/CS2235-PA02/pkg/list"
	"github.com/Brandon-Watkins/CS2235-PA02/pkg/script"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"
	"go.uber.org/zap"
)

type SeqList struct {
	logger *zap.Logger // non-nil logger.

	l           *concurrent_list.ConcurrentList[string]
	runner      *script.Runner
	metricsReg  *prometheus.Registry
	metricsFile string
}

// NewSeqList initializes the logger, the list and the script runner.
// print ops write to out.
func NewSeqList(cfg *Config, out io.Writer) (*SeqList, error) {
	lg, err := mlog.NewLogger(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}
	return newSeqList(cfg, out, lg), nil
}

func newSeqList(cfg *Config, out io.Writer, lg *zap.Logger) *SeqList {
	var l *list.List[string]
	if cfg.List.rejectBlank() {
		l = list.New[string]()
	} else {
		l = list.NewWithRejecter[string](nil)
	}

	s := &SeqList{
		logger:      lg,
		l:           concurrent_list.NewConcurrentList(l),
		metricsReg:  newMetricsReg(),
		metricsFile: cfg.Metrics.File,
	}
	s.runner = script.NewRunner(s.l, out, lg, s.GetMetricsReg())
	return s
}

// NewTestSeqList returns a SeqList that logs nothing and
// keeps blank elements out.
func NewTestSeqList(out io.Writer) *SeqList {
	return newSeqList(new(Config), out, mlog.Nop())
}

// Logger returns a non-nil logger.
func (s *SeqList) Logger() *zap.Logger {
	return s.logger
}

// List returns the list that ops are applied to.
func (s *SeqList) List() *concurrent_list.ConcurrentList[string] {
	return s.l
}

// GetMetricsReg returns a prometheus.Registerer with a prefix of "seqlist_"
func (s *SeqList) GetMetricsReg() prometheus.Registerer {
	return prometheus.WrapRegistererWithPrefix("seqlist_", s.metricsReg)
}

// Run applies ops and then dumps metrics if a metrics file is configured.
// Metrics are dumped even if an op failed.
func (s *SeqList) Run(ops []script.OpConfig) ([]script.Result, error) {
	s.logger.Info("running script", zap.Int("ops", len(ops)))
	res, runErr := s.runner.Run(ops)
	if len(s.metricsFile) > 0 {
		if err := s.writeMetrics(s.metricsFile); err != nil {
			s.logger.Error("failed to write metrics file", zap.String("file", s.metricsFile), zap.Error(err))
			if runErr == nil {
				runErr = err
			}
		}
	}
	if runErr != nil {
		return res, runErr
	}
	s.logger.Info("script finished", zap.Int("ops", len(res)), zap.Int("size", s.l.Size()))
	return res, nil
}

func (s *SeqList) writeMetrics(file string) error {
	mfs, err := s.metricsReg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := expfmt.NewEncoder(f, expfmt.FmtText)
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("failed to encode metrics: %w", err)
		}
	}
	return f.Close()
}

func newMetricsReg() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	return reg
}

// RunScript decodes the ops of cfg and runs them.
func RunScript(cfg *Config, out io.Writer) error {
	ops, err := script.DecodeOps(cfg.Ops)
	if err != nil {
		return fmt.Errorf("invalid ops: %w", err)
	}
	s, err := NewSeqList(cfg, out)
	if err != nil {
		return err
	}
	_, err = s.Run(ops)
	return err
}
