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

package tools

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/Brandon-Watkins/CS2235-PA02/coremain"
	"github.com/stretchr/testify/require"
)

func TestGenCfg(t *testing.T) {
	r := require.New(t)
	dir := t.TempDir()

	yamlCfg := filepath.Join(dir, "config.yaml")
	r.NoError(genCfg(yamlCfg))
	r.Error(genCfg(yamlCfg), "gen should not overwrite existing files")

	jsonCfg := filepath.Join(dir, "config.json")
	r.NoError(convCfg(yamlCfg, jsonCfg))

	for _, f := range []string{yamlCfg, jsonCfg} {
		cfg, err := coremain.LoadConfig(f)
		r.NoError(err, f)
		cfg.Log.Level = "error"

		out := new(bytes.Buffer)
		r.NoError(coremain.RunScript(cfg, out), f)
		r.Equal("9 2 3\n", out.String(), f)
	}
}
