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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Brandon-Watkins/CS2235-PA02/pkg/utils"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var ErrUnknownOp = errors.New("unknown op")

// OpConfig is one list operation of a script.
type OpConfig struct {
	// Op is the op name, e.g. "add_last". Case, "-" and "_" are ignored.
	Op    string `yaml:"op"`
	Value string `yaml:"value"`
	Index int    `yaml:"index"`
}

func (o OpConfig) String() string {
	switch argsOf(o.Op) {
	case argValue:
		return o.Op + ":" + o.Value
	case argIndex:
		return o.Op + ":" + strconv.Itoa(o.Index)
	case argValueIndex:
		return o.Op + ":" + o.Value + ":" + strconv.Itoa(o.Index)
	default:
		return o.Op
	}
}

type opKind uint8

const (
	opFirst opKind = iota
	opLast
	opAddFirst
	opAddLast
	opRemoveFirst
	opRemoveLast
	opInsert
	opRemove
	opGet
	opSize
	opIsEmpty
	opPrint
)

type argSpec uint8

const (
	argNone argSpec = iota
	argValue
	argIndex
	argValueIndex
)

type opInfo struct {
	kind opKind
	args argSpec
}

var ops = map[string]opInfo{
	"first":        {opFirst, argNone},
	"last":         {opLast, argNone},
	"add_first":    {opAddFirst, argValue},
	"add_last":     {opAddLast, argValue},
	"remove_first": {opRemoveFirst, argNone},
	"remove_last":  {opRemoveLast, argNone},
	"insert":       {opInsert, argValueIndex},
	"remove":       {opRemove, argIndex},
	"get":          {opGet, argIndex},
	"size":         {opSize, argNone},
	"is_empty":     {opIsEmpty, argNone},
	"print":        {opPrint, argNone},
}

// normalized name -> canonical name
var opAlias = make(map[string]string)

func init() {
	for name := range ops {
		opAlias[normalizeOpName(name)] = name
	}
}

func normalizeOpName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", "", "-", "").Replace(s)
}

// lookupOp returns the canonical name of s.
func lookupOp(s string) (string, opInfo, bool) {
	name, ok := opAlias[normalizeOpName(s)]
	if !ok {
		return "", opInfo{}, false
	}
	return name, ops[name], true
}

func argsOf(s string) argSpec {
	_, info, _ := lookupOp(s)
	return info.args
}

// SupportedOps returns the canonical names of all ops, sorted.
func SupportedOps() []string {
	names := maps.Keys(ops)
	slices.Sort(names)
	return names
}

// ParseOp parses an op in "name[:value][:index]" form.
// For insert, the index is taken after the last ":", so
// values of add ops and insert may contain ":".
func ParseOp(s string) (OpConfig, error) {
	s = strings.TrimSpace(s)
	rawName, args, hasArgs := utils.SplitString2(s, ":")
	if !hasArgs {
		rawName = s
	}
	name, info, ok := lookupOp(rawName)
	if !ok {
		return OpConfig{}, fmt.Errorf("%w: %q", ErrUnknownOp, rawName)
	}

	op := OpConfig{Op: name}
	switch info.args {
	case argNone:
		if hasArgs {
			return OpConfig{}, fmt.Errorf("op %s takes no argument, got %q", name, args)
		}
	case argValue:
		if !hasArgs {
			return OpConfig{}, fmt.Errorf("op %s needs a value", name)
		}
		op.Value = args
	case argIndex:
		if !hasArgs {
			return OpConfig{}, fmt.Errorf("op %s needs an index", name)
		}
		idx, err := strconv.Atoi(args)
		if err != nil {
			return OpConfig{}, fmt.Errorf("invalid index of op %s: %w", name, err)
		}
		op.Index = idx
	case argValueIndex:
		v, idxStr, ok := utils.SplitLastString2(args, ":")
		if !hasArgs || !ok {
			return OpConfig{}, fmt.Errorf("op %s needs a value and an index", name)
		}
		idx, err := strconv.Atoi(idxStr)
		if err != nil {
			return OpConfig{}, fmt.Errorf("invalid index of op %s: %w", name, err)
		}
		op.Value, op.Index = v, idx
	}
	return op, nil
}

// ParseOps parses one op per line. Blank lines and text after "#" are
// ignored. All malformed lines are reported.
func ParseOps(lines []string) ([]OpConfig, error) {
	var (
		res  []OpConfig
		errs utils.Errors
	)
	for i, line := range lines {
		line = strings.TrimSpace(utils.RemoveComment(line, "#"))
		if len(line) == 0 {
			continue
		}
		op, err := ParseOp(line)
		if err != nil {
			errs.Append(fmt.Errorf("line %d: %w", i+1, err))
			continue
		}
		res = append(res, op)
	}
	if err := errs.Build(); err != nil {
		return nil, err
	}
	return res, nil
}

// DecodeOps decodes ops from config. Each entry is either a string in
// ParseOp form or a map with OpConfig fields.
func DecodeOps(in []interface{}) ([]OpConfig, error) {
	res := make([]OpConfig, 0, len(in))
	for i, raw := range in {
		var op OpConfig
		switch v := raw.(type) {
		case string:
			var err error
			op, err = ParseOp(v)
			if err != nil {
				return nil, fmt.Errorf("op #%d: %w", i, err)
			}
		default:
			var err error
			op, err = decodeOp(v)
			if err != nil {
				return nil, fmt.Errorf("op #%d: %w", i, err)
			}
		}
		res = append(res, op)
	}
	return res, nil
}

// mapOp is the map form of an op. Pointers tell missing keys
// apart from zero values.
type mapOp struct {
	Op    string  `yaml:"op"`
	Value *string `yaml:"value"`
	Index *int    `yaml:"index"`
}

func decodeOp(in interface{}) (OpConfig, error) {
	var m mapOp
	if err := utils.WeakDecode(in, &m); err != nil {
		return OpConfig{}, fmt.Errorf("failed to decode: %w", err)
	}
	name, info, ok := lookupOp(m.Op)
	if !ok {
		return OpConfig{}, fmt.Errorf("%w: %q", ErrUnknownOp, m.Op)
	}

	wantValue := info.args == argValue || info.args == argValueIndex
	wantIndex := info.args == argIndex || info.args == argValueIndex
	switch {
	case wantValue && m.Value == nil:
		return OpConfig{}, fmt.Errorf("op %s needs a value", name)
	case wantIndex && m.Index == nil:
		return OpConfig{}, fmt.Errorf("op %s needs an index", name)
	case !wantValue && m.Value != nil:
		return OpConfig{}, fmt.Errorf("op %s takes no value, got %q", name, *m.Value)
	case !wantIndex && m.Index != nil:
		return OpConfig{}, fmt.Errorf("op %s takes no index, got %d", name, *m.Index)
	}

	op := OpConfig{Op: name}
	if m.Value != nil {
		op.Value = *m.Value
	}
	if m.Index != nil {
		op.Index = *m.Index
	}
	return op, nil
}
