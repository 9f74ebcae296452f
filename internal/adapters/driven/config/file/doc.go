// Package file loads tagledger's optional TOML configuration.
//
// Configuration supplies defaults only: every value can be overridden
// by a command-line flag, and a missing config file is not an error.
package file
