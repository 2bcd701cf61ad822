// chessperft counts move paths from a position and optionally checks the
// counts against a reference move generator.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/crosscheck"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/perft"
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
		fmt.Printf("chessperft version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	out, closeOut, err := config.OpenFile(*outputFile, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	defer closeOut() //nolint:errcheck
	cfg.Output.File = out

	logOut, closeLog, err := config.OpenFile(*logFile, os.Stderr)
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run counts, compares and reports according to cfg.
func run(ctx context.Context, cfg *config.Config) error {
	log := cfg.Logger()

	board, err := engine.NewBoardFromFEN(cfg.FEN())
	if err != nil {
		return err
	}

	opts := []perft.Option{perft.WithWorkers(cfg.Perft.Workers)}
	var nodeCache *hashing.NodeCache
	if cfg.Perft.CacheSize > 0 {
		nodeCache = hashing.NewNodeCache(cfg.Perft.CacheSize)
		opts = append(opts, perft.WithCache(nodeCache))
	}

	started := time.Now()
	results, err := perft.Divide(ctx, board, cfg.Perft.Depth, opts...)
	if err != nil {
		return err
	}
	total := perft.Total(results)
	event := log.Info().
		Str("fen", cfg.FEN()).
		Int("depth", cfg.Perft.Depth).
		Uint64("nodes", total).
		Dur("elapsed", time.Since(started))
	if nodeCache != nil {
		event = event.Int("cache_entries", nodeCache.Len()).Int64("cache_hits", nodeCache.Hits())
	}
	event.Msg("perft finished")

	report := output.NewPerftJSON(board, cfg.Perft.Depth, results)
	if cfg.Perft.Oracle != "" {
		ref, err := crosscheck.New(cfg.Perft.Oracle)
		if err != nil {
			return err
		}
		moves, err := crosscheck.Compare(board, ref)
		if err != nil {
			return err
		}
		theirs, err := ref.Perft(cfg.FEN(), cfg.Perft.Depth)
		if err != nil {
			return err
		}
		nodes := crosscheck.PerftDiff{Oracle: ref.Name(), Depth: cfg.Perft.Depth, Ours: total, Theirs: theirs}
		report.SetOracle(nodes, moves)
		if !report.Oracle.Agree {
			log.Warn().Str("oracle", ref.Name()).Uint64("ours", total).Uint64("theirs", theirs).Msg("node counts differ")
		}
	}

	if cfg.Output.JSON {
		if !cfg.Perft.Divide {
			report.Divide = nil
		}
		return output.WritePerft(cfg.Output.File, report)
	}
	return writeText(cfg.Output.File, report, cfg.Perft.Divide)
}

// writeText prints the divide lines, the total and the oracle verdict.
func writeText(w io.Writer, report *output.PerftJSON, divide bool) error {
	if divide {
		for _, d := range report.Divide {
			if _, err := fmt.Fprintf(w, "%s: %d\n", d.Move, d.Nodes); err != nil {
				return err
			}
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Depth: %d\nNodes: %d\n", report.Depth, report.Nodes)

	if o := report.Oracle; o != nil {
		verdict := "agree"
		if !o.Agree {
			verdict = "DISAGREE"
		}
		fmt.Fprintf(w, "Oracle %s: %d nodes, %s\n", o.Name, o.Nodes, verdict)
		if len(o.Missing) > 0 {
			fmt.Fprintf(w, "  missing: %v\n", o.Missing)
		}
		if len(o.Extra) > 0 {
			fmt.Fprintf(w, "  extra: %v\n", o.Extra)
		}
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "chessperft version %s\n\n", programVersion)
	fmt.Fprintf(os.Stderr, "Usage: chessperft [options]\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
