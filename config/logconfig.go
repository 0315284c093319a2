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

package config

// logLevelNames lists go-logging's level names from least to most verbose.
// "off" has no go-logging equivalent and maps to offLevel instead of an
// index; every other name's numeric level is its index minus one.
var logLevelNames = [...]string{"off", "critical", "error", "warning", "notice", "info", "debug"}

// offLevel disables a logger entirely; below go-logging's own CRITICAL (0).
const offLevel = -1

type logConfiguration struct {
	LogLvl       string
	SearchLogLvl string
}

// LogLevel and SearchLogLevel hold the numeric levels go-logging's backends
// are configured with; setupLogLvl derives both from the parsed config
// file's level names.
var (
	LogLevel       = 5
	SearchLogLevel = 5
)

// sets defaults which might be overwritten by config file
func init() {
	Settings.Log.LogLvl = "debug"
	Settings.Log.SearchLogLvl = "debug"
}

// setupLogLvl resolves both configured level names to go-logging's numeric
// levels, leaving the existing value in place for any name that isn't
// recognized.
func setupLogLvl() {
	LogLevel = levelByName(Settings.Log.LogLvl, LogLevel)
	SearchLogLevel = levelByName(Settings.Log.SearchLogLvl, SearchLogLevel)
}

// levelByName returns name's position among logLevelNames ("off" maps to
// offLevel, everything else to its go-logging numeric level), or fallback
// if name matches nothing.
func levelByName(name string, fallback int) int {
	for i, n := range logLevelNames {
		if n != name {
			continue
		}
		if n == "off" {
			return offLevel
		}
		return i - 1
	}
	return fallback
}
