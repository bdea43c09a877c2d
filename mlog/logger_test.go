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

package mlog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	r := require.New(t)

	_, err := NewLogger(LogConfig{Level: "loud"})
	r.Error(err)

	l, err := NewLogger(LogConfig{})
	r.NoError(err)
	r.True(l.Core().Enabled(zapcore.InfoLevel))
	r.False(l.Core().Enabled(zapcore.DebugLevel))

	f := filepath.Join(t.TempDir(), "seqlist.log")
	l, err = NewLogger(LogConfig{Level: "debug", File: f, Production: true})
	r.NoError(err)
	l.Debug("hello")
	_ = l.Sync()

	b, err := os.ReadFile(f)
	r.NoError(err)
	r.Contains(string(b), `"msg":"hello"`)
}
