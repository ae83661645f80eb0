package cli

// Config carries the command-line settings for a discovery run
type Config struct {
	Directories []string // directories or ./... patterns to scan
	Module      string   // module path override; empty means read go.mod
	Verbose     bool     // detailed output and error context
	Quiet       bool     // errors and final results only
	JSON        bool     // machine-readable manifest output
}
