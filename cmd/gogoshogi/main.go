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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/toduq/gogo-shogi/board"
	"github.com/toduq/gogo-shogi/config"
	"github.com/toduq/gogo-shogi/logging"
	"github.com/toduq/gogo-shogi/movegen"
	"github.com/toduq/gogo-shogi/notation"
	"github.com/toduq/gogo-shogi/search"
	. "github.com/toduq/gogo-shogi/types"
)

var out = message.NewPrinter(language.German)

func main() {
	black := flag.String("black", "cpu", "player for Black: human|cpu")
	white := flag.String("white", "cpu", "player for White: human|cpu")
	depth := flag.Int("depth", 0, "override config's search depth (0 keeps config.toml's value)")
	boardNotation := flag.String("board", "", "starting position in board notation (defaults to the initial position)")
	doProfile := flag.Bool("profile", false, "write a CPU profile of the run to the working directory")
	maxPlies := flag.Int("max-plies", 300, "abort the game after this many plies")
	configFile := flag.String("config", config.ConfFile, "path to the TOML settings file (tried relative to the working directory, then the executable)")
	flag.Parse()

	// this needs to be set before config.Setup() is called, otherwise the default is used.
	config.ConfFile = *configFile
	config.Setup()
	// the search logger is built during package initialization, before the
	// config file is read; rebuild it so the configured level applies.
	logging.GetSearchLog()
	if *depth > 0 {
		config.Settings.Search.Depth = *depth
	}

	if *doProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	var b board.Board
	if *boardNotation != "" {
		parsed, err := notation.ParseBoard(*boardNotation)
		if err != nil {
			out.Printf("invalid -board: %v\n", err)
			os.Exit(1)
		}
		b = *parsed
	} else {
		b = board.Init()
	}

	players := map[Turn]string{Black: *black, White: *white}
	searcher := search.New()
	stdin := bufio.NewReader(os.Stdin)

	out.Println(notation.FormatBoard(&b))

	evaluated := 0
	start := time.Now()
	for ply := 0; ply < *maxPlies; ply++ {
		if _, won := b.Won(); won {
			out.Printf("Game has finished in %d plies\n", ply)
			break
		}

		var m Move
		if players[b.Turn] == "human" {
			var err error
			m, err = readHumanMove(stdin, &b)
			if err != nil {
				out.Printf("invalid move: %v\n", err)
				ply--
				continue
			}
		} else {
			result, ok := searcher.FindBestMove(&b)
			if !ok {
				out.Printf("Game has finished in %d plies\n", ply)
				break
			}
			m = result.Move
			evaluated += result.Searched
			out.Printf("Selected move: %s\n", m)
			out.Printf("Evaluated %d boards, evaluation %d\n", result.Searched, result.Score)
		}

		b.PutMove(m)
		out.Println(notation.FormatBoard(&b))
		out.Println("==========================")

		if ply == *maxPlies-1 {
			out.Println("Abort. Too long game.")
		}
	}

	ms := time.Since(start).Milliseconds()
	if ms > 0 {
		out.Printf("Evaluated %d boards in %d ms. (%d boards/sec)\n", evaluated, ms, int64(evaluated)*1000/ms)
	}
}

func readHumanMove(stdin *bufio.Reader, b *board.Board) (Move, error) {
	fmt.Print("Please input your move [3332/3231p/g32]: ")
	line, err := stdin.ReadString('\n')
	if err != nil {
		return NoMove, err
	}
	m, err := notation.ParseMove(b, line)
	if err != nil {
		return NoMove, err
	}
	for _, legal := range movegen.AllValidMoves(b) {
		if legal == m {
			return m, nil
		}
	}
	return NoMove, fmt.Errorf("%s is not a legal move", m)
}
