package engine

import (
	"context"
	"errors"
	"path/filepath"

	repovaulterrors "repovault.dev/repovault/internal/errors"
	"repovault.dev/repovault/internal/git"
	"repovault.dev/repovault/internal/output"
	"repovault.dev/repovault/internal/resolve"
)

// Engine synchronizes a collection of repository sources
type Engine struct {
	runner   git.Runner
	resolver *resolve.Resolver
	remote   string
	log      *output.Splog
}

// New creates an Engine
func New(runner git.Runner, resolver *resolve.Resolver, remote string, log *output.Splog) *Engine {
	return &Engine{
		runner:   runner,
		resolver: resolver,
		remote:   remote,
		log:      log,
	}
}

// SyncAll processes sources sequentially, in the order given, and returns the
// run summary. One repository's failure never aborts the rest of the run.
func (e *Engine) SyncAll(ctx context.Context, sources []Source, projectsDir string) *Summary {
	summary := &Summary{}
	for _, src := range sources {
		outcome := e.syncOne(ctx, src, projectsDir)
		summary.Add(outcome)

		switch outcome.Status {
		case StatusFailed:
			e.log.Error("%s: %s", outcome.Name, outcome.Reason)
		case StatusSkippedNoBranch:
			e.log.Warn("%s: no default branch, skipping", outcome.Name)
		default:
			e.log.Info("%s: %s (%s)", outcome.Name, outcome.Status, outcome.Branch)
		}
	}
	return summary
}

func (e *Engine) syncOne(ctx context.Context, src Source, projectsDir string) Outcome {
	if src.Kind == SourceRemote {
		path := filepath.Join(projectsDir, src.Name)
		if e.runner.IsRepo(path) {
			// Already cloned on a previous run; the clone URL is ignored
			// and the working copy is updated like any local repository.
			return e.update(ctx, src.Name, path)
		}
		return e.clone(ctx, src, path)
	}
	return e.update(ctx, src.Name, src.Path)
}

// update brings an existing working copy up to date: fetch, resolve the
// default branch, switch to it if needed, fast-forward pull.
func (e *Engine) update(ctx context.Context, name, path string) Outcome {
	if err := e.runner.Fetch(ctx, path, e.remote); err != nil {
		return Outcome{Name: name, Path: path, Status: StatusFailed, Reason: "fetch failed: " + err.Error()}
	}

	branch, err := e.resolver.Resolve(ctx, path)
	if err != nil {
		if errors.Is(err, repovaulterrors.ErrNoBranch) {
			return Outcome{Name: name, Path: path, Status: StatusSkippedNoBranch}
		}
		return Outcome{Name: name, Path: path, Status: StatusFailed, Reason: "branch resolution failed: " + err.Error()}
	}

	current, err := e.runner.CurrentBranch(path)
	if err != nil || current != branch {
		if err := e.runner.Checkout(ctx, path, branch); err != nil {
			return Outcome{Name: name, Path: path, Branch: branch, Status: StatusFailed, Reason: "checkout failed: " + err.Error()}
		}
	}

	if err := e.runner.Pull(ctx, path, e.remote, branch); err != nil {
		return Outcome{Name: name, Path: path, Branch: branch, Status: StatusFailed, Reason: "pull failed: " + err.Error()}
	}

	return Outcome{Name: name, Path: path, Branch: branch, Status: StatusSynced}
}

// clone creates a fresh working copy. The clone itself decides success;
// a failed checkout of the resolved branch afterwards is only a warning.
func (e *Engine) clone(ctx context.Context, src Source, path string) Outcome {
	if err := e.runner.Clone(ctx, src.CloneURL, path); err != nil {
		return Outcome{Name: src.Name, Path: path, Status: StatusFailed, Reason: "clone failed: " + err.Error()}
	}

	branch, err := e.resolver.Resolve(ctx, path)
	if err != nil {
		e.log.Warn("%s: cloned but no default branch resolved", src.Name)
		return Outcome{Name: src.Name, Path: path, Status: StatusCloned}
	}

	current, err := e.runner.CurrentBranch(path)
	if err != nil || current != branch {
		if err := e.runner.Checkout(ctx, path, branch); err != nil {
			e.log.Warn("%s: cloned but checkout of %s failed: %v", src.Name, branch, err)
		}
	}

	return Outcome{Name: src.Name, Path: path, Branch: branch, Status: StatusCloned}
}
