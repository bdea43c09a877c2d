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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOp(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    OpConfig
		wantErr bool
	}{
		{"first", "first", OpConfig{Op: "first"}, false},
		{"case and dash", " Remove-First ", OpConfig{Op: "remove_first"}, false},
		{"no underscore", "addlast:1", OpConfig{Op: "add_last", Value: "1"}, false},
		{"add with colon", "add_first:a:b", OpConfig{Op: "add_first", Value: "a:b"}, false},
		{"add empty", "add_first:", OpConfig{Op: "add_first", Value: ""}, false},
		{"insert", "insert:9:1", OpConfig{Op: "insert", Value: "9", Index: 1}, false},
		{"insert with colon", "insert:a:b:-1", OpConfig{Op: "insert", Value: "a:b", Index: -1}, false},
		{"remove", "remove:0", OpConfig{Op: "remove", Index: 0}, false},
		{"get", "get:2", OpConfig{Op: "get", Index: 2}, false},
		{"unknown", "push:1", OpConfig{}, true},
		{"size with arg", "size:1", OpConfig{}, true},
		{"add without value", "add_last", OpConfig{}, true},
		{"get without index", "get", OpConfig{}, true},
		{"get bad index", "get:x", OpConfig{}, true},
		{"insert without index", "insert:9", OpConfig{}, true},
		{"insert bad index", "insert:9:x", OpConfig{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOp(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseOp("pop")
	assert.True(t, errors.Is(err, ErrUnknownOp))
}

func TestParseOps(t *testing.T) {
	ops, err := ParseOps([]string{
		"# build",
		"add_last:1",
		"",
		"  add_last:2 # second",
		"insert:9:1",
	})
	require.NoError(t, err)
	assert.Equal(t, []OpConfig{
		{Op: "add_last", Value: "1"},
		{Op: "add_last", Value: "2"},
		{Op: "insert", Value: "9", Index: 1},
	}, ops)

	_, err = ParseOps([]string{"add_last:1", "bad", "get:x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "line 3")
}

func TestDecodeOps(t *testing.T) {
	ops, err := DecodeOps([]interface{}{
		"add_last:1",
		map[string]interface{}{"op": "Insert", "value": 9, "index": "1"},
		map[string]interface{}{"op": "print"},
	})
	require.NoError(t, err)
	assert.Equal(t, []OpConfig{
		{Op: "add_last", Value: "1"},
		{Op: "insert", Value: "9", Index: 1},
		{Op: "print"},
	}, ops)

	_, err = DecodeOps([]interface{}{map[string]interface{}{"op": "nope"}})
	assert.True(t, errors.Is(err, ErrUnknownOp))

	_, err = DecodeOps([]interface{}{map[string]interface{}{"op": "get", "idx": 1}})
	assert.Error(t, err)

	_, err = DecodeOps([]interface{}{"get"})
	assert.Error(t, err)
}

func TestDecodeOps_Args(t *testing.T) {
	tests := []struct {
		name    string
		in      map[string]interface{}
		want    OpConfig
		wantErr string
	}{
		{"remove without index", map[string]interface{}{"op": "remove"}, OpConfig{}, "needs an index"},
		{"get without index", map[string]interface{}{"op": "get"}, OpConfig{}, "needs an index"},
		{"insert without index", map[string]interface{}{"op": "insert", "value": "x"}, OpConfig{}, "needs an index"},
		{"insert without value", map[string]interface{}{"op": "insert", "index": 0}, OpConfig{}, "needs a value"},
		{"add without value", map[string]interface{}{"op": "add_last"}, OpConfig{}, "needs a value"},
		{"print with index", map[string]interface{}{"op": "print", "index": 3}, OpConfig{}, "takes no index"},
		{"size with value", map[string]interface{}{"op": "size", "value": "x"}, OpConfig{}, "takes no value"},
		{"add with index", map[string]interface{}{"op": "add_first", "value": "a", "index": 1}, OpConfig{}, "takes no index"},
		{"remove with value", map[string]interface{}{"op": "remove", "value": "a", "index": 1}, OpConfig{}, "takes no value"},
		{"add empty value", map[string]interface{}{"op": "add_first", "value": ""}, OpConfig{Op: "add_first"}, ""},
		{"remove zero index", map[string]interface{}{"op": "remove", "index": 0}, OpConfig{Op: "remove"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeOps([]interface{}{tt.in})
			if len(tt.wantErr) > 0 {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []OpConfig{tt.want}, got)
		})
	}

	// Both forms reject the same ops.
	for _, s := range []string{"remove", "get", "insert:x", "add_last", "print:3"} {
		_, strErr := DecodeOps([]interface{}{s})
		assert.Error(t, strErr, s)
	}
}

func TestSupportedOps(t *testing.T) {
	names := SupportedOps()
	assert.Len(t, names, len(ops))
	assert.Equal(t, "add_first", names[0])
	assert.Equal(t, "size", names[len(names)-1])
}

func TestOpConfig_String(t *testing.T) {
	for _, s := range []string{"first", "add_last:x", "insert:9:1", "get:-1"} {
		op, err := ParseOp(s)
		require.NoError(t, err)
		assert.Equal(t, s, op.String())
	}
}
