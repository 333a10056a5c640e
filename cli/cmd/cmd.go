package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type (
	specFilesKey struct{}
	specFiles    struct {
		read     []io.Reader
		hasStdin bool
	}

	// SpecFiles is the concatenated spec input a command reads its variable
	// groups from.
	SpecFiles interface {
		IsZero() bool
		io.Reader
		io.WriterTo
	}
)

// IsZero reports whether there are no spec files.
func (s *specFiles) IsZero() bool { return len(s.read) == 0 && !s.hasStdin }

// Read implements io.Reader by reading from all spec files in order,
// including stdin if present.
func (s *specFiles) Read(p []byte) (n int, err error) {
	readers := s.read
	if s.hasStdin {
		readers = append(readers, os.Stdin)
	}

	return io.MultiReader(readers...).Read(p)
}

// WriteTo implements io.WriterTo by writing all spec files to w in order,
// including stdin if present.
func (s *specFiles) WriteTo(w io.Writer) (n int64, err error) {
	readers := s.read
	if s.hasStdin {
		readers = append(readers, os.Stdin)
	}

	return io.Copy(w, io.MultiReader(readers...))
}

// fileKey uniquely identifies a file by its device and inode numbers.
// This handles deduplication across symlinks, absolute/relative paths, and
// special device files.
type fileKey struct {
	dev uint64
	ino uint64
}

// stdinSpec is the special spec file name for reading from stdin.
const stdinSpec = "-"

// WithSpecFiles returns a new context.Context containing a [SpecFiles] that
// reads from the given spec files.
//
// Variable groups may be split across files, so the readers are simply
// concatenated before parsing. The function deduplicates readers by resolving
// symlinks and comparing device/inode pairs, so naming the same spec twice
// cannot double its groups. All occurrences of "-" are replaced with a single
// stdin reader placed last so it reads after all regular files.
func WithSpecFiles(ctx context.Context, specs []string) context.Context {
	return context.WithValue(ctx, specFilesKey{}, buildSpecFiles(specs))
}

func buildSpecFiles(specs []string) SpecFiles {
	if len(specs) == 0 {
		return nil
	}

	var srcs specFiles

	srcs.read = make([]io.Reader, 0, len(specs))
	seen := make(map[fileKey]struct{})

	stdinInfo, _ := os.Stdin.Stat()
	stdinKey, _ := makeFileKey(stdinInfo)

	for _, spec := range specs {
		if spec == stdinSpec {
			seen[stdinKey] = struct{}{}

			continue
		}

		reader, ok := openUniqueFile(spec, seen)
		if !ok {
			continue
		}

		srcs.read = append(srcs.read, reader)
	}

	// Stdin may have been included via "-" or as a named file.
	// Both of which will be represented by stdinKey in seen.
	_, srcs.hasStdin = seen[stdinKey]
	delete(seen, stdinKey)

	// If no files were successfully opened and no stdin, return nil
	if len(srcs.read) == 0 && !srcs.hasStdin {
		return nil
	}

	return &srcs
}

// openUniqueFile opens the file at path if it hasn't been seen before.
// It resolves symlinks and uses device/inode to detect duplicates.
// Returns the opened file and true if successful, or nil and false if the
// file is a duplicate or cannot be opened.
func openUniqueFile(path string, seen map[fileKey]struct{}) (io.Reader, bool) {
	// Resolve to absolute path to handle relative path duplicates.
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, false
	}

	// Resolve symlinks to their target.
	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return nil, false
	}

	// Get file info to extract device and inode.
	info, err := os.Stat(resolved)
	if err != nil {
		return nil, false
	}

	key, ok := makeFileKey(info)
	if !ok {
		return nil, false
	}

	if _, exists := seen[key]; exists {
		return nil, false
	}

	seen[key] = struct{}{}

	file, err := os.Open(resolved)
	if err != nil {
		return nil, false
	}

	return file, true
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: stat.Dev, ino: stat.Ino}, true
}

// specFilesFrom retrieves the SpecFiles stored in ctx by WithSpecFiles.
// Returns nil if none were stored.
func specFilesFrom(ctx context.Context) SpecFiles {
	r, _ := ctx.Value(specFilesKey{}).(SpecFiles)

	return r
}
