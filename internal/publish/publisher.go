// Package publish materializes the successfully synchronized working copies
// into a backup artifact: a mirrored directory tree or a zip archive.
// Version-control metadata and OS-noise files never end up in an artifact.
package publish

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"repovault.dev/repovault/internal/engine"
	repovaulterrors "repovault.dev/repovault/internal/errors"
)

// Mode selects the artifact shape
type Mode int

const (
	// ModeMirror copies each repository into destination/<name>/
	ModeMirror Mode = iota
	// ModeArchive writes a single timestamped zip file
	ModeArchive
)

// Options configures a publication
type Options struct {
	Mode Mode

	// Destination is the mirror directory, or the directory the archive
	// file is written into
	Destination string

	// ProjectsDir is the projects root; archive entries are rooted at its basename
	ProjectsDir string

	// TimestampDir suffixes the mirror destination with the run timestamp
	// instead of clearing it
	TimestampDir bool
}

// Artifact describes a published backup. Write-once: created only after all
// sync attempts have completed.
type Artifact struct {
	Path      string
	CreatedAt time.Time
	Repos     []string
}

// Publisher produces backup artifacts
type Publisher struct {
	now func() time.Time
}

// New creates a Publisher
func New() *Publisher {
	return &Publisher{now: time.Now}
}

// timestamp layout gives to-the-second resolution so two runs on the same
// day never collide
const stampLayout = "20060102-150405"

// osNoise are file names that must never appear in an artifact
var osNoise = map[string]bool{
	".DS_Store":   true,
	"Thumbs.db":   true,
	"desktop.ini": true,
}

// Publish writes the artifact for the given successfully synced repositories.
// Any write failure is fatal for the run; the sync work itself is already on
// disk and is not rolled back.
func (p *Publisher) Publish(repos []engine.Outcome, opts Options) (*Artifact, error) {
	switch opts.Mode {
	case ModeArchive:
		return p.archive(repos, opts)
	default:
		return p.mirror(repos, opts)
	}
}

// mirror copies each repository's working tree into destination/<name>/.
// Without TimestampDir the destination is cleared first, so re-running
// replaces prior contents instead of merging with them.
func (p *Publisher) mirror(repos []engine.Outcome, opts Options) (*Artifact, error) {
	createdAt := p.now()
	dest := opts.Destination
	if opts.TimestampDir {
		dest = dest + "-" + createdAt.Format(stampLayout)
	} else if err := os.RemoveAll(dest); err != nil {
		return nil, repovaulterrors.NewPublishError(dest, err)
	}

	if err := os.MkdirAll(dest, 0o755); err != nil {
		return nil, repovaulterrors.NewPublishError(dest, err)
	}

	artifact := &Artifact{Path: dest, CreatedAt: createdAt}
	for _, repo := range repos {
		if err := copyTree(repo.Path, filepath.Join(dest, repo.Name), false); err != nil {
			return nil, repovaulterrors.NewPublishError(dest, err)
		}
		artifact.Repos = append(artifact.Repos, repo.Name)
	}
	return artifact, nil
}

// archive writes destination/<projectsBase>-backup-<stamp>.zip with every
// repository rooted at the projects-directory basename. Log files are
// excluded in addition to the standard exclusion set.
func (p *Publisher) archive(repos []engine.Outcome, opts Options) (*Artifact, error) {
	createdAt := p.now()
	base := filepath.Base(opts.ProjectsDir)
	path := filepath.Join(opts.Destination, fmt.Sprintf("%s-backup-%s.zip", base, createdAt.Format(stampLayout)))

	if err := os.MkdirAll(opts.Destination, 0o755); err != nil {
		return nil, repovaulterrors.NewPublishError(path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, repovaulterrors.NewPublishError(path, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	artifact := &Artifact{Path: path, CreatedAt: createdAt}
	for _, repo := range repos {
		if err := addTreeToZip(zw, repo.Path, base+"/"+repo.Name); err != nil {
			zw.Close()
			return nil, repovaulterrors.NewPublishError(path, err)
		}
		artifact.Repos = append(artifact.Repos, repo.Name)
	}

	if err := zw.Close(); err != nil {
		return nil, repovaulterrors.NewPublishError(path, err)
	}
	if err := f.Close(); err != nil {
		return nil, repovaulterrors.NewPublishError(path, err)
	}
	return artifact, nil
}

// excluded reports whether a directory entry is filtered from artifacts
func excluded(d fs.DirEntry, skipLogs bool) bool {
	if d.IsDir() {
		return d.Name() == ".git"
	}
	if osNoise[d.Name()] {
		return true
	}
	return skipLogs && strings.HasSuffix(d.Name(), ".log")
}

// copyTree copies src into dst, applying the exclusion rules.
// Only directories and regular files are copied.
func copyTree(src, dst string, skipLogs bool) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if excluded(d, skipLogs) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// addTreeToZip writes src into the archive under prefix, applying the
// exclusion rules plus the archive-only log-file filter
func addTreeToZip(zw *zip.Writer, src, prefix string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if excluded(d, true) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}
		header.Name = prefix + "/" + filepath.ToSlash(rel)
		header.Method = zip.Deflate

		w, err := zw.CreateHeader(header)
		if err != nil {
			return err
		}

		in, err := os.Open(path)
		if err != nil {
			return err
		}
		defer in.Close()
		_, err = io.Copy(w, in)
		return err
	})
}
