/*
 * Cobra - tetromino move generator in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Command cobra is the perft/bench driver for the move generator: it
// wires up config and logging the way the rest of the module expects,
// then runs an incrementally-deepening node count (one perft run per
// depth from 1 up to the requested depth) over the standard seven-piece
// queue on an empty playfield.
package main

import (
	"flag"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/cobra-go/internal/config"
	"github.com/frankkopp/cobra-go/internal/logging"
	"github.com/frankkopp/cobra-go/internal/movegen"
)

var out = message.NewPrinter(language.German)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(off|critical|error|warning|notice|info|debug)")
	genLogLvl := flag.String("genloglvl", "", "move generator log level\n(off|critical|error|warning|notice|info|debug)")
	perft := flag.Int("perft", 0, "runs perft on an empty board up to the given depth,\nprinting one result line per depth from 1 to the given value\n(0 uses the depth from the configuration file)")
	parallel := flag.Bool("parallel", false, "fans the perft search for the first ply out across goroutines")
	cpuprofile := flag.Bool("cpuprofile", false, "writes a pprof CPU profile of the run to the current directory")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuprofile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if lvl, found := config.LogLevels[*genLogLvl]; found {
		config.GenLogLevel = lvl
	}
	// Re-fetch the loggers now that the level overrides are in place -
	// the package-level loggers are created once at import time with
	// whatever level the defaults gave them.
	logging.GetLog()
	logging.GetGenLog()

	maxDepth := *perft
	if maxDepth <= 0 {
		maxDepth = config.Settings.Gen.PerftDepth
	}

	for depth := 1; depth <= maxDepth; depth++ {
		p := movegen.NewPerft()
		if *parallel {
			if err := p.StartPerftParallel(depth); err != nil {
				out.Printf("perft failed at depth %d: %v\n", depth, err)
				return
			}
			continue
		}
		p.StartPerft(depth)
	}
}

func printVersionInfo() {
	out.Println("Cobra move generator")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
}
