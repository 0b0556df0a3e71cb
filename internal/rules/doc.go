// Package rules implements the detection rules used by secrethunter.
// Each rule reports zero or more findings for a given file path and data.
package rules
