// Package securefs provides the restricted filesystem through which all
// schema resolution happens.
//
// The XSD engine resolves import and include locations by opening names
// against an fs.FS. Confining that FS to a single directory makes network
// fetches and directory escapes structurally impossible: a schemaLocation
// shaped like a URL, an absolute path, or a parent traversal never reaches
// the operating system — Open refuses it with a BlockedError. The overlay
// mechanism substitutes the in-memory rewritten primary schema without
// touching the files on disk.
package securefs

import (
	"bytes"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
	"strings"
	"time"
)

// BlockedError reports a resolution attempt refused by policy.
type BlockedError struct {
	// Name is the name that was refused
	Name string
	// Reason describes why it was refused
	Reason string
}

// Error returns a human-readable error message.
func (e *BlockedError) Error() string {
	return fmt.Sprintf("blocked schema resolution %q: %s", e.Name, e.Reason)
}

// FS is an fs.FS confined to the direct children of one directory, with
// optional in-memory overlays. The zero value is not usable; construct
// with Dir or New.
type FS struct {
	base    fs.FS
	overlay map[string][]byte
	onOpen  func(name string)
}

// Dir returns an FS confined to the direct children of dir.
func Dir(dir string) *FS {
	return New(os.DirFS(dir))
}

// New returns an FS applying the confinement policy on top of base.
// base is typically os.DirFS of the schema directory; tests substitute
// fstest.MapFS or a spy.
func New(base fs.FS) *FS {
	return &FS{base: base}
}

// WithOverlay returns a copy of f that serves data for name instead of
// the on-disk content. The on-disk file is never read or written through
// the overlay.
func (f *FS) WithOverlay(name string, data []byte) *FS {
	overlay := make(map[string][]byte, len(f.overlay)+1)
	maps.Copy(overlay, f.overlay)
	overlay[name] = data
	return &FS{base: f.base, overlay: overlay, onOpen: f.onOpen}
}

// WithOpenHook returns a copy of f that calls fn with every name that
// passes the policy check, before it is served.
func (f *FS) WithOpenHook(fn func(name string)) *FS {
	return &FS{base: f.base, overlay: f.overlay, onOpen: fn}
}

// Open implements fs.FS. Names that are URL-shaped, absolute, contain a
// backslash, fail fs.ValidPath, or resolve outside the directory's direct
// children are refused with a *BlockedError wrapped in *fs.PathError.
func (f *FS) Open(name string) (fs.File, error) {
	if reason := blockReason(name); reason != "" {
		return nil, &fs.PathError{
			Op:   "open",
			Path: name,
			Err:  &BlockedError{Name: name, Reason: reason},
		}
	}
	if f.onOpen != nil {
		f.onOpen(name)
	}
	if data, ok := f.overlay[name]; ok {
		return newMemFile(name, data), nil
	}
	return f.base.Open(name)
}

func blockReason(name string) string {
	switch {
	case strings.Contains(name, "://"):
		return "non-local locations are not resolved"
	case strings.Contains(name, `\`):
		return "backslash separators are not resolved"
	case strings.HasPrefix(name, "/"):
		return "absolute paths are not resolved"
	case !fs.ValidPath(name):
		return "path escapes the schema directory"
	case path.Dir(name) != ".":
		return "only files colocated with the primary schema are resolved"
	}
	return ""
}

// memFile is a read-only fs.File backed by a byte slice.
type memFile struct {
	name   string
	size   int64
	reader *bytes.Reader
}

func newMemFile(name string, data []byte) *memFile {
	return &memFile{name: name, size: int64(len(data)), reader: bytes.NewReader(data)}
}

func (m *memFile) Stat() (fs.FileInfo, error) { return memFileInfo{m.name, m.size}, nil }
func (m *memFile) Read(p []byte) (int, error) { return m.reader.Read(p) }
func (m *memFile) Close() error               { return nil }

type memFileInfo struct {
	name string
	size int64
}

func (i memFileInfo) Name() string       { return path.Base(i.name) }
func (i memFileInfo) Size() int64        { return i.size }
func (i memFileInfo) Mode() fs.FileMode  { return 0o444 }
func (i memFileInfo) ModTime() time.Time { return time.Time{} }
func (i memFileInfo) IsDir() bool        { return false }
func (i memFileInfo) Sys() any           { return nil }
