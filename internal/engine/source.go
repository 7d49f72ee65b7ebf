// Package engine implements the repository synchronization run: it brings each
// repository's working copy up to date with its remote default branch (or
// creates it via clone) and accumulates per-repository outcomes into a run
// summary. Processing is strictly sequential and partial-failure tolerant.
package engine

import (
	"path/filepath"
	"strings"
)

// SourceKind distinguishes repositories already on disk from ones that must be cloned
type SourceKind int

const (
	// SourceLocal is a working copy already present on disk
	SourceLocal SourceKind = iota
	// SourceRemote is a repository known only by its clone URL
	SourceRemote
)

// Source identifies one repository to process
type Source struct {
	Kind     SourceKind
	Name     string
	Path     string // working copy path (SourceLocal)
	CloneURL string // clone URL (SourceRemote)
}

// LocalSource creates a Source for a working copy on disk.
// The canonical name is the path basename minus any ".git" suffix.
func LocalSource(path string) Source {
	return Source{
		Kind: SourceLocal,
		Name: strings.TrimSuffix(filepath.Base(path), ".git"),
		Path: path,
	}
}

// RemoteSource creates a Source for a repository that may need cloning.
// When name is empty it is derived from the clone URL basename.
func RemoteSource(name, cloneURL string) Source {
	if name == "" {
		trimmed := strings.TrimSuffix(cloneURL, "/")
		name = strings.TrimSuffix(trimmed[strings.LastIndex(trimmed, "/")+1:], ".git")
	}
	return Source{
		Kind:     SourceRemote,
		Name:     name,
		CloneURL: cloneURL,
	}
}

// Status is the result category of processing one repository
type Status int

const (
	// StatusSynced means an existing working copy was brought up to date
	StatusSynced Status = iota
	// StatusCloned means a fresh clone was created
	StatusCloned
	// StatusSkippedNoBranch means no default branch could be resolved
	StatusSkippedNoBranch
	// StatusFailed means an external command failed for this repository
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSynced:
		return "synced"
	case StatusCloned:
		return "cloned"
	case StatusSkippedNoBranch:
		return "skipped (no branch)"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the immutable result of processing one Source.
// Exactly one Outcome is produced per Source per run.
type Outcome struct {
	Name   string
	Path   string
	Branch string // resolved branch; empty if resolution failed
	Status Status
	Reason string // diagnostic for StatusFailed
}

// Succeeded reports whether the repository ended up usable for backup
func (o Outcome) Succeeded() bool {
	return o.Status == StatusSynced || o.Status == StatusCloned
}

// Summary aggregates the outcomes of one run. It is mutated only by the
// sequential sync loop and read-only afterwards.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
	Skipped   int
	Outcomes  []Outcome
}

// Add accumulates one outcome
func (s *Summary) Add(o Outcome) {
	s.Total++
	s.Outcomes = append(s.Outcomes, o)
	switch {
	case o.Succeeded():
		s.Succeeded++
	case o.Status == StatusSkippedNoBranch:
		s.Skipped++
	default:
		s.Failed++
	}
}

// Successes returns the outcomes eligible for backup publication
func (s *Summary) Successes() []Outcome {
	var out []Outcome
	for _, o := range s.Outcomes {
		if o.Succeeded() {
			out = append(out, o)
		}
	}
	return out
}
