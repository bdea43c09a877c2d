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
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Brandon-Watkins/CS2235-PA02/mlog"
	"github.com/Brandon-Watkins/CS2235-PA02/pkg/script"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "seqlist",
	Short: "Run scripts of doubly linked list operations.",
}

func init() {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the ops of a config file.",
		Args:  cobra.NoArgs,
		Run:   StartScript,
	}
	rootCmd.AddCommand(runCmd)
	fs := runCmd.PersistentFlags()
	fs.StringVarP(&sf.c, "config", "c", "", "config file")
	fs.StringVarP(&sf.dir, "dir", "d", "", "working dir")

	execCmd := &cobra.Command{
		Use:   "exec [op...]",
		Short: "Run ops given as arguments. Supported ops: " + strings.Join(script.SupportedOps(), ", "),
		Example: "  seqlist exec add_last:1 add_last:2 add_last:3 insert:9:1 remove:0 get:2 print\n" +
			"  seqlist exec -f ops.txt print",
		Run: ExecOps,
	}
	rootCmd.AddCommand(execCmd)
	fs = execCmd.PersistentFlags()
	fs.StringVarP(&ef.file, "file", "f", "", "read ops from file, one per line, before the ones in args")
	fs.StringVar(&ef.level, "log-level", "warn", "log level")
	fs.BoolVar(&ef.keepBlank, "keep-blank", false, "do not drop empty elements")
	fs.StringVar(&ef.metricsFile, "metrics-file", "", "write metrics to this file after the run")
}

func AddSubCmd(c *cobra.Command) {
	rootCmd.AddCommand(c)
}

func Run() error {
	return rootCmd.Execute()
}

type scriptFlags struct {
	c   string
	dir string
}

var sf = scriptFlags{}

type execFlags struct {
	file        string
	level       string
	keepBlank   bool
	metricsFile string
}

var ef = execFlags{}

func StartScript(cmd *cobra.Command, args []string) {
	if len(sf.dir) > 0 {
		err := os.Chdir(sf.dir)
		if err != nil {
			mlog.L().Fatal("failed to change the current working directory", zap.Error(err))
		}
		mlog.L().Info("working directory changed", zap.String("path", sf.dir))
	}

	cfg, err := LoadConfig(sf.c)
	if err != nil {
		mlog.L().Fatal("failed to load config", zap.Error(err))
	}

	if err := RunScript(cfg, os.Stdout); err != nil {
		mlog.L().Fatal("script failed", zap.Error(err))
	}
}

func ExecOps(cmd *cobra.Command, args []string) {
	var lines []string
	if len(ef.file) > 0 {
		fileLines, err := readLines(ef.file)
		if err != nil {
			mlog.L().Fatal("failed to read ops file", zap.String("file", ef.file), zap.Error(err))
		}
		lines = append(lines, fileLines...)
	}
	lines = append(lines, args...)

	ops, err := script.ParseOps(lines)
	if err != nil {
		mlog.S().Fatal(err)
	}

	keep := !ef.keepBlank
	cfg := &Config{
		Log:     mlog.LogConfig{Level: ef.level},
		List:    ListConfig{RejectBlank: &keep},
		Metrics: MetricsConfig{File: ef.metricsFile},
	}
	s, err := NewSeqList(cfg, os.Stdout)
	if err != nil {
		mlog.S().Fatal(err)
	}
	if _, err := s.Run(ops); err != nil {
		mlog.S().Fatal(err)
	}
}

func readLines(file string) ([]string, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// LoadConfig reads the config file and all its includes.
// If file is empty, "config" with any supported extension in the
// current dir is used.
func LoadConfig(file string) (*Config, error) {
	v := viper.New()
	if len(file) > 0 {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg, decoderOpt); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfgPath := v.ConfigFileUsed()
	if err := mergeInclude(cfg, 0, []string{cfgPath}, []string{tryGetAbsPath(cfgPath)}); err != nil {
		return nil, fmt.Errorf("failed to load sub config file: %w", err)
	}
	return cfg, nil
}

func decoderOpt(cfg *mapstructure.DecoderConfig) {
	cfg.ErrorUnused = true
	cfg.TagName = "yaml"
	cfg.WeaklyTypedInput = true
}

func mergeInclude(cfg *Config, depth int, paths, absPaths []string) error {
	depth++
	if depth > 8 {
		return fmt.Errorf("maximun include depth reached, include path is %s", strings.Join(paths, " -> "))
	}
	for _, subCfgFile := range cfg.Include {
		subPaths := append(paths, subCfgFile)
		subCfgAbsPath := tryGetAbsPath(subCfgFile)
		subAbsPaths := append(absPaths, subCfgAbsPath)
		for _, includedAbsPath := range absPaths {
			if includedAbsPath == subCfgAbsPath {
				return fmt.Errorf("cycle include depth detected, include path is %s", strings.Join(subPaths, " -> "))
			}
		}

		mlog.L().Info("reading sub config", zap.String("file", subCfgFile))
		subV := viper.New()
		subV.SetConfigFile(subCfgFile)
		if err := subV.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read sub config file %s: %w", subCfgFile, err)
		}
		subCfg := new(Config)
		if err := subV.Unmarshal(subCfg, decoderOpt); err != nil {
			return fmt.Errorf("failed to parse sub config file %s: %w", subCfgFile, err)
		}
		if err := mergeInclude(subCfg, depth, subPaths, subAbsPaths); err != nil {
			return err
		}

		cfg.Ops = append(cfg.Ops, subCfg.Ops...)
		if subCfg.Log != (mlog.LogConfig{}) || subCfg.Metrics != (MetricsConfig{}) || subCfg.List.RejectBlank != nil {
			mlog.L().Warn("log, list and metrics config in sub config files will be ignored", zap.String("file", subCfgFile))
		}
	}
	return nil
}

func tryGetAbsPath(s string) string {
	p, err := filepath.Abs(s)
	if err != nil {
		return s
	}
	return p
}
