// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/walteh/jscrack/pkg/engine"
	"gitlab.com/tozd/go/errors"
)

// 🔧 OptionsArgs overrides engine passes. Unset fields keep their defaults.
type OptionsArgs struct {
	Mangle      *bool `json:"mangle,omitempty" yaml:"mangle,omitempty" hcl:"mangle,optional"`
	JSX         *bool `json:"jsx,omitempty" yaml:"jsx,omitempty" hcl:"jsx,optional"`
	Unpack      *bool `json:"unpack,omitempty" yaml:"unpack,omitempty" hcl:"unpack,optional"`
	Deobfuscate *bool `json:"deobfuscate,omitempty" yaml:"deobfuscate,omitempty" hcl:"deobfuscate,optional"`
	Unminify    *bool `json:"unminify,omitempty" yaml:"unminify,omitempty" hcl:"unminify,optional"`
}

// 🔌 EngineArgs selects the engine executable
type EngineArgs struct {
	Command string   `json:"command" yaml:"command" hcl:"command"`
	Args    []string `json:"args,omitempty" yaml:"args,omitempty" hcl:"args,optional"`
}

// 📚 Config represents the complete configuration
type Config struct {
	Options *OptionsArgs `json:"options,omitempty" yaml:"options,omitempty" hcl:"options,block"`
	Engine  *EngineArgs  `json:"engine,omitempty" yaml:"engine,omitempty" hcl:"engine,block"`
	Exclude []string     `json:"exclude,omitempty" yaml:"exclude,omitempty" hcl:"exclude,optional"`
	Force   bool         `json:"force,omitempty" yaml:"force,omitempty" hcl:"force,optional"`

	location string
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{}
}

// Location returns the file the config was loaded from, if any.
func (cfg *Config) Location() string {
	return cfg.location
}

// EngineOptions applies the configured overrides to engine.DefaultOptions.
func (cfg *Config) EngineOptions() engine.Options {
	opts := engine.DefaultOptions()
	if cfg.Options == nil {
		return opts
	}
	set := func(dst *bool, v *bool) {
		if v != nil {
			*dst = *v
		}
	}
	set(&opts.Mangle, cfg.Options.Mangle)
	set(&opts.JSX, cfg.Options.JSX)
	set(&opts.Unpack, cfg.Options.Unpack)
	set(&opts.Deobfuscate, cfg.Options.Deobfuscate)
	set(&opts.Unminify, cfg.Options.Unminify)
	return opts
}

// NewEngine builds the engine the config describes.
func (cfg *Config) NewEngine() *engine.Command {
	if cfg.Engine == nil {
		return engine.NewCommand(engine.DefaultCommand)
	}
	return engine.NewCommand(cfg.Engine.Command, cfg.Engine.Args...)
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if cfg.Engine != nil && strings.TrimSpace(cfg.Engine.Command) == "" {
		return errors.Errorf("engine.command is required")
	}
	for i, pattern := range cfg.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("exclude[%d]: invalid pattern %q", i, pattern)
		}
	}
	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	command := engine.DefaultCommand
	if cfg.Engine != nil {
		command = strings.Join(append([]string{cfg.Engine.Command}, cfg.Engine.Args...), " ")
	}
	return fmt.Sprintf("engine=%q options=%+v exclude=%v force=%t", command, cfg.EngineOptions(), cfg.Exclude, cfg.Force)
}
