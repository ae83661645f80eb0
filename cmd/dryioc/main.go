package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/exileDev/DryIoc/internal/cli"
)

func main() {
	var (
		moduleFlag  = flag.String("module", "", "Module path for the scanned packages (defaults to the go.mod module)")
		verboseFlag = flag.Bool("verbose", false, "Enable verbose output and detailed error reporting")
		quietFlag   = flag.Bool("quiet", false, "Only show errors and the registration listing")
		jsonFlag    = flag.Bool("json", false, "Emit the registration manifest as JSON")
		helpFlag    = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <directory-paths...>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "DryIoc Annotation Scanner\n")
		fmt.Fprintf(os.Stderr, "Scans directories for Go files with dryioc:: annotations and prints the discovered service registrations.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nArguments:\n")
		fmt.Fprintf(os.Stderr, "  directory-paths    One or more directories to scan for annotated Go files\n")
		fmt.Fprintf(os.Stderr, "                     Supports Go-style patterns like './...' for recursive scanning\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s ./...                                  # Scan everything recursively\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s ./internal/services ./internal/store   # Scan specific directories\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --json ./... > registrations.json      # Machine-readable manifest\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --module github.com/myorg/myapp ./...  # Override the module path\n", os.Args[0])
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Error: At least one directory path is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	if *verboseFlag && *quietFlag {
		fmt.Fprintf(os.Stderr, "Error: --verbose and --quiet are mutually exclusive\n")
		os.Exit(1)
	}

	runner := cli.NewRunner(cli.Config{
		Directories: args,
		Module:      *moduleFlag,
		Verbose:     *verboseFlag,
		Quiet:       *quietFlag,
		JSON:        *jsonFlag,
	})
	if err := runner.Run(); err != nil {
		os.Exit(1)
	}
}
