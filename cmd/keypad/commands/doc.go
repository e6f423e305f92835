// Package commands implements the keypad command line: an interactive keypad,
// scripted key presses, and direct evaluation of expressions.
package commands
