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

package script

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Brandon-Watkins/CS2235-PA02/pkg/concurrent_list"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Result is the outcome of one op.
type Result struct {
	Op string

	// Value is the element returned by first, last, get and remove ops,
	// the rendered list for print, and the answer of size and is_empty.
	Value string

	// OK is false if the op was declined: a dropped element, a negative
	// insert index, an out of range index or an empty list.
	OK bool

	// Size is the list size after the op.
	Size int
}

// Runner applies ops to a list.
type Runner struct {
	l      *concurrent_list.ConcurrentList[string]
	out    io.Writer
	logger *zap.Logger

	opsTotal      *prometheus.CounterVec
	declinedTotal *prometheus.CounterVec
	size          prometheus.GaugeFunc
}

// NewRunner returns a Runner that works on l and writes print output to out.
// A nil logger disables logging. Metrics are registered on reg
// if it is not nil.
func NewRunner(
	l *concurrent_list.ConcurrentList[string],
	out io.Writer,
	logger *zap.Logger,
	reg prometheus.Registerer,
) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Runner{
		l:      l,
		out:    out,
		logger: logger,

		opsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ops_total",
			Help: "The total number of applied ops",
		}, []string{"op"}),
		declinedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "declined_total",
			Help: "The total number of ops that were declined",
		}, []string{"op"}),
		size: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "list_size",
			Help: "Current list size in elements",
		}, func() float64 {
			return float64(l.Size())
		}),
	}
	if reg != nil {
		reg.MustRegister(r.opsTotal, r.declinedTotal, r.size)
	}
	return r
}

// Run applies ops in order. It stops at the first op that fails
// and returns the results of all ops applied before it.
func (r *Runner) Run(ops []OpConfig) ([]Result, error) {
	res := make([]Result, 0, len(ops))
	for i, op := range ops {
		rr, err := r.Exec(op)
		if err != nil {
			return res, fmt.Errorf("op #%d %s: %w", i, op.Op, err)
		}
		res = append(res, rr)
	}
	return res, nil
}

// Exec applies one op.
func (r *Runner) Exec(op OpConfig) (Result, error) {
	name, info, ok := lookupOp(op.Op)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownOp, op.Op)
	}

	res := Result{Op: name}
	switch info.kind {
	case opFirst:
		res.Value, res.OK = r.l.First()
	case opLast:
		res.Value, res.OK = r.l.Last()
	case opAddFirst:
		res.OK = r.l.AddFirst(op.Value)
	case opAddLast:
		res.OK = r.l.AddLast(op.Value)
	case opRemoveFirst:
		res.Value, res.OK = r.l.RemoveFirst()
	case opRemoveLast:
		res.Value, res.OK = r.l.RemoveLast()
	case opInsert:
		res.OK = r.l.Insert(op.Value, op.Index)
	case opRemove:
		res.Value, res.OK = r.l.Remove(op.Index)
	case opGet:
		res.Value, res.OK = r.l.Get(op.Index)
	case opSize:
		res.Value, res.OK = strconv.Itoa(r.l.Size()), true
	case opIsEmpty:
		res.Value, res.OK = strconv.FormatBool(r.l.IsEmpty()), true
	case opPrint:
		res.Value, res.OK = r.l.String(), true
		if _, err := io.WriteString(r.out, res.Value+"\n"); err != nil {
			return Result{}, fmt.Errorf("failed to write list: %w", err)
		}
	}
	res.Size = r.l.Size()

	r.opsTotal.WithLabelValues(name).Inc()
	if !res.OK {
		r.declinedTotal.WithLabelValues(name).Inc()
		r.logger.Info("op declined", zap.Stringer("op", op), zap.Int("size", res.Size))
	} else {
		r.logger.Debug(
			"op applied",
			zap.Stringer("op", op),
			zap.String("result", res.Value),
			zap.Int("size", res.Size),
		)
	}
	return res, nil
}
