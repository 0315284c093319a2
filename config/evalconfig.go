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

type evalConfiguration struct {
	// KingValue overrides types.Piece's built-in King value for the
	// evaluator's material sum.
	KingValue int

	// PositionalWeight scales the Chebyshev-distance-to-enemy-King term.
	// Zero disables the positional term entirely.
	PositionalWeight int

	// HandDiscountNum/Den discount a piece held in hand relative to the
	// same piece on the board, as a num/den fraction.
	HandDiscountNum int
	HandDiscountDen int
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Eval.KingValue = 100_000

	Settings.Eval.PositionalWeight = 1

	Settings.Eval.HandDiscountNum = 9
	Settings.Eval.HandDiscountDen = 10
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupEval() {

}
