// Package terminal answers questions about the terminal attached to a file
// descriptor: whether it is displayed, how wide it is, and whether its
// TERM type understands color sequences. It does not write to the terminal.
package terminal
