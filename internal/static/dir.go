// Package static resolves request paths against a static root directory.
package static

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/tinoosan/pageserve/internal/errs"
)

const indexFile = "index.html"

// Dir looks up files below a fixed root. It holds no mutable state and is
// safe for concurrent use.
type Dir struct {
	root string
	fs   http.Dir
}

// Asset is the result of a successful lookup: either an open file or a
// redirect to the trailing-slash form of a directory.
type Asset struct {
	File     http.File
	Info     fs.FileInfo
	Location string
}

// Redirect reports whether the asset is a directory redirect.
func (a Asset) Redirect() bool { return a.Location != "" }

// Close releases the underlying file, if any.
func (a Asset) Close() error {
	if a.File == nil {
		return nil
	}
	return a.File.Close()
}

// New returns a Dir rooted at root.
func New(root string) *Dir {
	return &Dir{root: root, fs: http.Dir(root)}
}

// Root returns the configured root directory.
func (d *Dir) Root() string { return d.root }

// Lookup resolves a decoded URL path. Missing or unreadable files and
// directories without an index yield an error wrapping errs.ErrNotFound;
// any other error is an internal failure reported as a *LookupError.
func (d *Dir) Lookup(ctx context.Context, name string) (Asset, error) {
	if err := ctx.Err(); err != nil {
		return Asset{}, err
	}
	if !strings.HasPrefix(name, "/") {
		name = "/" + name
	}
	if strings.ContainsRune(name, 0) {
		return Asset{}, fmt.Errorf("%q: %w", name, errs.ErrNotFound)
	}
	f, err := d.fs.Open(name)
	if err != nil {
		return Asset{}, classify(name, err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return Asset{}, lookupErr("stat", name, err)
	}
	if !info.IsDir() {
		return Asset{File: f, Info: info}, nil
	}
	_ = f.Close()
	if !strings.HasSuffix(name, "/") {
		return Asset{Location: path.Base(name) + "/"}, nil
	}
	return d.index(name)
}

func (d *Dir) index(dir string) (Asset, error) {
	name := dir + indexFile
	f, err := d.fs.Open(name)
	if err != nil {
		return Asset{}, classify(name, err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return Asset{}, lookupErr("stat", name, err)
	}
	if info.IsDir() {
		_ = f.Close()
		return Asset{}, fmt.Errorf("%s: %w", name, errs.ErrNotFound)
	}
	return Asset{File: f, Info: info}, nil
}

// Ready checks that the root exists and is a directory.
func (d *Dir) Ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(d.root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("static root %s is not a directory", d.root)
	}
	return nil
}

func classify(name string, err error) error {
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%s: %w", name, errs.ErrNotFound)
	}
	return lookupErr("open", name, err)
}

// LookupError is an internal lookup failure. Its message names the request
// path only; the OS error, which carries the absolute path below the root,
// is kept aside for diagnostics.
type LookupError struct {
	Op   string
	Name string
	Err  error
	full error
}

func (e *LookupError) Error() string { return e.Op + " " + e.Name + ": " + e.Err.Error() }
func (e *LookupError) Unwrap() error { return e.Err }

// Full returns the error as reported by the filesystem.
func (e *LookupError) Full() error { return e.full }

func lookupErr(op, name string, err error) error {
	cause := err
	var pe *fs.PathError
	if errors.As(err, &pe) {
		cause = pe.Err
	}
	return &LookupError{Op: op, Name: name, Err: cause, full: err}
}
