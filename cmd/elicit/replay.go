package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/promptwire/elicit/internal/logctx"
	"github.com/promptwire/elicit/scriptwire"
)

func newReplayCmd(_ *config) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "replay <scenario.yaml>",
		Short: "replay a YAML answer scenario against the server-profile shape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := sessionContext(cmd.Context(), "replay")
			if !watch {
				return replayOnce(ctx, cmd, args[0])
			}
			return watchAndReplay(ctx, cmd, args[0])
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "re-run the scenario whenever the file changes")
	return cmd
}

func replayOnce(ctx context.Context, cmd *cobra.Command, path string) error {
	tr, err := scriptwire.Load(path)
	if err != nil {
		return err
	}
	profile, err := profileStep()(ctx, tr)
	if err != nil {
		return err
	}
	if n := tr.Remaining(); n > 0 {
		logctx.From(ctx).WarnContext(ctx, "scenario has unused answers", "remaining", n)
	}
	return printYAML(cmd, profile)
}

// watchAndReplay re-runs the scenario on every write to it. Editors
// often replace the file rather than write in place, so the parent
// directory is watched and events are filtered by name.
func watchAndReplay(ctx context.Context, cmd *cobra.Command, path string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	run := func() {
		if err := replayOnce(ctx, cmd, abs); err != nil {
			logctx.From(ctx).ErrorContext(ctx, "replay failed", "err", err)
		}
	}
	run()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				logctx.From(ctx).InfoContext(ctx, "scenario changed, replaying", "path", abs)
				run()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logctx.From(ctx).ErrorContext(ctx, "watcher error", "err", err)
		}
	}
}
