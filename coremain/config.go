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
	"github.com/Brandon-Watkins/CS2235-PA02/mlog"
)

type Config struct {
	Log     mlog.LogConfig `yaml:"log"`
	Include []string       `yaml:"include"`
	List    ListConfig     `yaml:"list"`
	Metrics MetricsConfig  `yaml:"metrics"`

	// Ops, each entry is either a "name[:value][:index]" string
	// or a map with op, value and index keys.
	// Ops of included files are appended.
	Ops []interface{} `yaml:"ops"`
}

type ListConfig struct {
	// RejectBlank drops nil and empty string elements.
	// Default is true.
	RejectBlank *bool `yaml:"reject_blank"`
}

func (c ListConfig) rejectBlank() bool {
	return c.RejectBlank == nil || *c.RejectBlank
}

type MetricsConfig struct {
	// File, if set, receives all metrics in prometheus text format
	// after the script is done.
	File string `yaml:"file"`
}
