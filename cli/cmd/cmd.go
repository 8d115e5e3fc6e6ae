package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/ardnew/arith/lang"
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
	optionsKey struct{}
	inputKey   struct{}
	outputKey  struct{}
)

// WithOptions returns a new context.Context carrying language options applied
// by every command that parses or evaluates programs.
func WithOptions(ctx context.Context, opts ...lang.Option) context.Context {
	return context.WithValue(ctx, optionsKey{}, slices.Clip(opts))
}

func optionsFrom(ctx context.Context) []lang.Option {
	opts, _ := ctx.Value(optionsKey{}).([]lang.Option)

	return slices.Clip(opts)
}

// WithInput returns a new context.Context whose commands read "-" sources
// from r instead of os.Stdin.
func WithInput(ctx context.Context, r io.Reader) context.Context {
	return context.WithValue(ctx, inputKey{}, r)
}

func inputFrom(ctx context.Context) io.Reader {
	if r, ok := ctx.Value(inputKey{}).(io.Reader); ok && r != nil {
		return r
	}

	return os.Stdin
}

// WithOutput returns a new context.Context whose commands write their results
// to w instead of os.Stdout.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// sources is an [io.Reader] over the concatenated text of the source files
// and standard input.
type sources struct {
	io.Reader

	names []string
	files []*os.File
}

// openSources opens the given source paths for reading in order.
//
// Files are deduplicated by resolving symlinks and comparing device/inode
// pairs. All occurrences of "-", and any path naming stdin itself, are
// replaced with a single stdin reader placed last. With no paths, only stdin
// is read. Each source is terminated with a newline if it does not already
// end with one.
func openSources(paths []string, stdin io.Reader) (*sources, error) {
	var (
		src      sources
		readers  []io.Reader
		useStdin = len(paths) == 0
		seen     = make(map[fileKey]struct{})
	)

	stdinKey, stdinKnown := readerKey(stdin)

	for _, path := range paths {
		if path == stdinSource {
			useStdin = true

			continue
		}

		file, key, ok, err := openFile(path)
		if err != nil {
			_ = src.Close()

			return nil, ErrOpenSource.With(slog.String("file", path)).Wrap(err)
		}

		if ok && stdinKnown && key == stdinKey {
			file.Close()

			useStdin = true

			continue
		}

		if _, dup := seen[key]; ok && dup {
			file.Close()

			continue
		}

		if ok {
			seen[key] = struct{}{}
		}

		src.files = append(src.files, file)
		src.names = append(src.names, path)
		readers = append(readers, &lineReader{r: file})
	}

	if useStdin {
		src.names = append(src.names, stdinSource)
		readers = append(readers, &lineReader{r: stdin})
	}

	src.Reader = io.MultiReader(readers...)

	return &src, nil
}

// Close closes every opened source file.
func (s *sources) Close() error {
	var errs []error

	for _, f := range s.files {
		errs = append(errs, f.Close())
	}

	s.files = nil

	return errors.Join(errs...)
}

// readAll returns the concatenated text of the given source paths.
func readAll(ctx context.Context, paths []string) (string, error) {
	src, err := openSources(paths, inputFrom(ctx))
	if err != nil {
		return "", err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", ErrReadSource.Wrap(err)
	}

	return string(data), nil
}

// fileKey uniquely identifies a file by its device and inode numbers.
// This handles deduplication across symlinks, absolute/relative paths, and
// special device files.
type fileKey struct {
	dev uint64
	ino uint64
}

// openFile opens the file at path after resolving it to an absolute path
// without symlinks. The key is valid only if ok is true.
func openFile(path string) (file *os.File, key fileKey, ok bool, err error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, key, false, err
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, key, false, err
	}

	file, err = os.Open(resolved)
	if err != nil {
		return nil, key, false, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()

		return nil, key, false, err
	}

	key, ok = makeFileKey(info)

	return file, key, ok, nil
}

// readerKey returns the file key of r if it is an open file.
func readerKey(r io.Reader) (fileKey, bool) {
	f, ok := r.(*os.File)
	if !ok || f == nil {
		return fileKey{}, false
	}

	info, err := f.Stat()
	if err != nil {
		return fileKey{}, false
	}

	return makeFileKey(info)
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true
}

// lineReader yields the text of r followed by a newline if that text is not
// empty and does not already end with one. Concatenated sources therefore
// never join their boundary lines.
type lineReader struct {
	r    io.Reader
	last byte // final byte read, zero before the first
	eof  bool
}

func (l *lineReader) Read(p []byte) (int, error) {
	if l.eof {
		return l.pad(p)
	}

	n, err := l.r.Read(p)
	if n > 0 {
		l.last = p[n-1]
	}

	if !errors.Is(err, io.EOF) {
		return n, err
	}

	l.eof = true

	if n == 0 {
		return l.pad(p)
	}

	return n, nil
}

func (l *lineReader) pad(p []byte) (int, error) {
	if l.last == 0 || l.last == '\n' {
		return 0, io.EOF
	}

	if len(p) == 0 {
		return 0, nil
	}

	p[0], l.last = '\n', '\n'

	return 1, io.EOF
}
