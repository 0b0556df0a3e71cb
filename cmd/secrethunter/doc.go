// Package secrethunter provides the command-line interface for the
// secrethunter tool. It configures subcommands (scan, rules, history), parses
// flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/secrethunter/secrethunter/cmd/secrethunter"
//	func main() { secrethunter.Execute() }
package secrethunter
