//go:build !(js && wasm)

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"csyntax/internal/cmd"
	"csyntax/internal/config"
	"csyntax/internal/context"
)

func main() {
	// Parse command-line flags
	debugFlag := flag.Bool("debug", false, "Enable debug output")
	strictFlag := flag.Bool("strict", false, "Treat statement warnings as errors")
	noCommentsFlag := flag.Bool("no-comments", false, "Omit comment tokens from the listing")
	terminatorFlag := flag.String("terminator", cmd.TerminatorEnd, "Interactive input terminator: end or blank")
	configFlag := flag.String("config", "", "Path to a TOML config file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [file.c]\n\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "Without a file argument, source is read interactively.\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	// Create analyzer options; flags win over the config file
	options := context.DefaultOptions()
	options.Debug = *debugFlag

	terminator := *terminatorFlag
	if *configFlag != "" {
		cfg, err := config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(2)
		}
		cfg.Apply(options)
		if cfg.Terminator != "" {
			terminator = cfg.Terminator
		}
	}
	if *strictFlag {
		options.StrictStatements = true
	}
	if *noCommentsFlag {
		options.IncludeComments = false
	}
	if terminator != cmd.TerminatorEnd && terminator != cmd.TerminatorBlank {
		fmt.Fprintf(os.Stderr, "error: invalid terminator %q: want %q or %q\n",
			terminator, cmd.TerminatorEnd, cmd.TerminatorBlank)
		os.Exit(2)
	}

	runCfg := cmd.RunConfig{Terminator: terminator}
	if flag.NArg() > 0 {
		runCfg.FilePath = flag.Arg(0)
	}

	pipeline := context.NewPipeline(options)
	os.Exit(cmd.Run(pipeline, runCfg))
}
