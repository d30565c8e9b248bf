// Package report writes search results for the non-interactive search
// command as an aligned table, JSON or YAML. Table output adapts its title
// column to the terminal width and only colours output for terminals.
package report
