// Package cli parses volcanium's command line, validates flag values, and
// maps failures to process exit codes. It also builds the process logger from
// the parsed log flags.
package cli
