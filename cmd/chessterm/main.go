// chessterm is a two player chess board for the terminal. Pieces are moved
// by clicking a piece and then one of its highlighted destinations.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/session"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessterm version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		cfg.Output.Plain = true
	}

	// The full screen board owns the terminal, so it only logs to a file.
	fallback := io.Writer(os.Stderr)
	if !cfg.Output.Plain {
		fallback = nil
	}
	logOut, closeLog, err := config.OpenFile(*logFile, fallback)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	defer closeLog() //nolint:errcheck
	cfg.Log.File = logOut

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	s, err := session.New(cfg.FEN(), session.WithLogger(cfg.Logger()), session.WithName(*sessionName))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Output.Plain {
		err = runLine(s, os.Stdin, cfg.Output.File, cfg.Output.NoColour)
	} else {
		err = newUI(s).run()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func usage() {
	fmt.Fprintf(os.Stderr, "chessterm version %s\n\n", programVersion)
	fmt.Fprintf(os.Stderr, "Usage: chessterm [options]\n\n")
	fmt.Fprintf(os.Stderr, "Full screen: click a piece, then a highlighted square.\n")
	fmt.Fprintf(os.Stderr, "  k / q      castle kingside / queenside\n")
	fmt.Fprintf(os.Stderr, "  left/right choose a promotion piece, enter to confirm\n")
	fmt.Fprintf(os.Stderr, "  esc        quit\n\n")
	fmt.Fprintf(os.Stderr, "Line mode: type square names (e2, e4), O-O, O-O-O, fen or quit.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
