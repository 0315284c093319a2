/*
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

// Package config holds the engine's tunable settings - search depth and
// score bounds, evaluator weights, and log levels - loaded from
// config.toml with compiled-in defaults as a fallback.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

var (
	// ConfFile is the TOML settings file Setup loads. A relative path is
	// tried against the working directory first, then against the
	// directory holding the running executable, so an installed binary
	// still finds its settings regardless of the caller's cwd. Set before
	// calling Setup to point at a different file - cmd/gogoshogi's
	// -config flag does exactly this.
	ConfFile = "config/config.toml"

	// Settings is the global configuration read in from file.
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup loads ConfFile over the compiled-in defaults set by this package's
// init functions, then derives the log levels. Safe to call more than
// once; only the first call does anything.
func Setup() {
	if initialized {
		return
	}

	path, err := resolveConfigPath(ConfFile)
	if err != nil {
		fmt.Println(err)
	} else if _, err := toml.DecodeFile(path, &Settings); err != nil {
		fmt.Println(err)
	}

	setupLogLvl()
	setupSearch()
	setupEval()

	initialized = true
}

// resolveConfigPath locates file relative to the working directory, falling
// back to the directory of the running executable. An absolute path is
// returned unchanged, unchecked.
func resolveConfigPath(file string) (string, error) {
	if filepath.IsAbs(file) {
		return file, nil
	}

	if wd, err := os.Getwd(); err == nil {
		if candidate := filepath.Join(wd, file); fileExists(candidate) {
			return candidate, nil
		}
	}

	if exe, err := os.Executable(); err == nil {
		if candidate := filepath.Join(filepath.Dir(exe), file); fileExists(candidate) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("config: %q not found relative to the working directory or the executable, using compiled-in defaults", file)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
