//
// Cobra - tetromino move generator in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package config holds global configuration read from a toml file and/or
// overridden by command line flags.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/frankkopp/cobra-go/internal/util"
)

// globally available config values
var (
	// LogLevel defines the general log level set by default or given by the command line arguments
	LogLevel = 2

	// GenLogLevel defines the move generator log level set by default or given by the command line arguments
	GenLogLevel = 2

	// TestLogLevel defines the log level used while running the test suite
	TestLogLevel = 5

	// ConfFile is the path to the toml configuration file
	ConfFile = "config.toml"

	// Settings is the global configuration read in from file
	Settings conf

	initialized = false
)

type conf struct {
	Log logConfiguration
	Gen genConfiguration
}

// Setup reads the configuration file (if found) and fills in the
// global Settings struct as well as the derived log level variables.
// Calling Setup more than once is a no-op.
func Setup() {
	if initialized {
		return
	}

	if path, err := util.ResolveFile(ConfFile); err == nil {
		if _, err := toml.DecodeFile(path, &Settings); err != nil {
			fmt.Println(err)
		}
	}

	setupLogLvl()
	setupGen()

	initialized = true
}

func (c conf) String() string {
	return fmt.Sprintf("Log: %+v Gen: %+v", c.Log, c.Gen)
}
