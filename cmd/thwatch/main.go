/*

thwatch attaches to a running Perfect Cherry Blossom process, drives the
tracking engine's three-state FSM against it, and prints every emitted
event to stdout. When DATABASE_URL is set it also opens a
persistence.SQLiteSink and, whenever a run finishes, re-reads the local
score file to persist fresh spell-card and practice snapshots.

*/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hakurei-works/thstat/memory"
	th07mem "github.com/hakurei-works/thstat/memory/th07"
	"github.com/hakurei-works/thstat/persistence"
	th07sf "github.com/hakurei-works/thstat/scorefile/th07"
	"github.com/hakurei-works/thstat/tracking"
	th07tr "github.com/hakurei-works/thstat/tracking/th07"
	th07types "github.com/hakurei-works/thstat/types/th07"
)

const (
	exitCodeBadArguments  = 1
	exitCodeUnrecoverable = 2
)

func main() {
	var (
		pid          uint32
		scoreFile    string
		pollInterval time.Duration
		verbose      bool
	)

	root := &cobra.Command{
		Use:   "thwatch",
		Short: "Track a running Perfect Cherry Blossom process and print its events",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(pid, scoreFile, pollInterval, verbose)
		},
	}

	root.Flags().Uint32Var(&pid, "pid", 0, "process id of the running th07.exe to attach to (required)")
	root.Flags().StringVar(&scoreFile, "scorefile", "", "path to the player's th07 score file, used to persist fresh snapshots when a run ends")
	root.Flags().DurationVar(&pollInterval, "poll-interval", 200*time.Millisecond, "how often to poll the attached process")
	root.Flags().BoolVar(&verbose, "verbose", false, "log driver-level warnings")
	root.MarkFlagRequired("pid")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeBadArguments)
	}
}

func run(pid uint32, scoreFile string, pollInterval time.Duration, verbose bool) error {
	logger := zap.NewNop()
	if verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("thwatch: building logger: %w", err)
		}
		defer logger.Sync()
	}

	handle, err := openProcess(pid)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeUnrecoverable)
	}
	defer handle.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var sink *persistence.SQLiteSink
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		sink, err = persistence.Open(ctx, dsn)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitCodeUnrecoverable)
		}
		defer sink.Close()
	}

	inspector := th07tr.NewInspector(handle, th07mem.NewMemoryAccess())
	driver := tracking.NewDriver[th07tr.Loc](inspector, logger)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-sigCh:
			if out, ok := driver.Close(time.Now()); ok {
				printOutput(out)
				persistFromScoreFile(ctx, sink, scoreFile, logger)
			}
			return nil

		case now := <-ticker.C:
			out, ok, err := driver.Tick(now)
			if err != nil {
				logger.Warn("tick failed", zap.Error(err))
				continue
			}
			if !ok {
				continue
			}
			printOutput(out)
			persistFromScoreFile(ctx, sink, scoreFile, logger)
		}
	}
}

func printOutput(out tracking.Output[th07tr.Loc]) {
	fmt.Printf("run finished: cleared=%v elapsed_game=%s elapsed_play=%s\n",
		out.Cleared, out.Elapsed.GameTime(), out.Elapsed.PlayTime())
	for _, e := range out.Events {
		if e.Kind == tracking.EventGameSpecific {
			fmt.Printf("  %s @ %s: %v\n", e.Kind, e.Time.GameTime(), e.GameSpecific)
			continue
		}
		fmt.Printf("  %s @ %s\n", e.Kind, e.Time.GameTime())
	}
}

// persistFromScoreFile re-parses the player's local score file and writes
// a fresh snapshot row for every card and practice it contains. sink may
// be nil, in which case this is a no-op; scoreFile may be empty for the
// same reason -- persistence is an opt-in feature of this reference
// binary, not a requirement of the driver loop itself.
func persistFromScoreFile(ctx context.Context, sink *persistence.SQLiteSink, scoreFile string, logger *zap.Logger) {
	if sink == nil || scoreFile == "" {
		return
	}

	f, err := os.Open(scoreFile)
	if err != nil {
		logger.Warn("could not open score file for snapshot", zap.Error(err))
		return
	}
	defer f.Close()

	sf, err := th07sf.ParseWithLogger(f, logger)
	if err != nil {
		logger.Warn("could not parse score file for snapshot", zap.Error(err))
		return
	}

	now := time.Now()
	for _, card := range sf.Cards {
		for _, shot := range th07types.ShotTypes {
			attempts := card.Attempts(shot.Any())
			if attempts == 0 {
				continue
			}
			err := sink.InsertCard(ctx, persistence.CardSnapshot{
				Timestamp: now,
				Card:      card.Card(),
				ShotType:  shot.Any(),
				Captures:  card.Captures(shot.Any()),
				Attempts:  attempts,
				MaxBonus:  card.MaxBonus(shot.Any()),
			})
			if err != nil {
				logger.Warn("insert card snapshot failed", zap.Error(err))
			}
		}
	}

	for _, p := range sf.Practices {
		err := sink.InsertPractice(ctx, persistence.PracticeSnapshot{
			Timestamp:  now,
			Difficulty: p.DifficultyValue.ID,
			ShotType:   p.ShotType(),
			Stage:      p.StageValue.ID,
			Attempts:   p.AttemptCount,
			HighScore:  uint64(p.BestScore),
		})
		if err != nil {
			logger.Warn("insert practice snapshot failed", zap.Error(err))
		}
	}
}

var _ memory.ProcessHandle = (*winProcessHandle)(nil)
