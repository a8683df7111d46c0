// Package terminal renders the game into a tcell screen and emulates the joystick from the keyboard.
//
// Features:
//   - Pixel-addressed drawing mapped onto character cells (5x10 pixels per cell)
//   - Shadow background buffer so text keeps the color of the region it is printed over
//   - Virtual joystick latched from arrow keys, hjkl, Space and Enter
//   - Event polling on a recovered goroutine; Fini restores the terminal
//
// One game cell (10x10 pixels) covers two columns and one row, which keeps cells square
// on typical terminal fonts.
package terminal
