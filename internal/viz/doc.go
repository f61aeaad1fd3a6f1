// Package viz styles gasdyn's terminal output with lipgloss.
//
// It provides the shared text styles used by the CLI tables and a
// [Sparkline] for previewing one profile column inline.
package viz
