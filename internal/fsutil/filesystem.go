// Package fsutil provides filesystem abstractions for testability.
package fsutil

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// FileSystem abstracts the filesystem operations used by the gate and
// path readers/writers. Use OSFileSystem for production and
// MemoryFileSystem for testing.
type FileSystem interface {
	// Open opens the named file for reading.
	Open(name string) (fs.File, error)

	// CreateTemp creates a new temporary file in dir, following the
	// naming rules of os.CreateTemp.
	CreateTemp(dir, pattern string) (TempFile, error)

	// Rename moves oldpath to newpath, replacing newpath if it exists.
	Rename(oldpath, newpath string) error

	// Remove removes the named file.
	Remove(name string) error

	// Exists checks if a file exists.
	Exists(name string) bool
}

// TempFile is a writable file that knows its own name.
type TempFile interface {
	io.WriteCloser
	Name() string
}

// WriteFileAtomic writes name by streaming write's output to a temporary
// file in the same directory and renaming it into place. If write or any
// filesystem step fails the temporary file is removed and name is left
// untouched.
func WriteFileAtomic(fsys FileSystem, name string, write func(w io.Writer) error) (err error) {
	dir := filepath.Dir(name)
	tmp, err := fsys.CreateTemp(dir, "."+filepath.Base(name)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = fsys.Remove(tmpName)
		}
	}()

	if err = write(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = fsys.Rename(tmpName, name); err != nil {
		return fmt.Errorf("rename %s: %w", name, err)
	}
	return nil
}

// OSFileSystem implements FileSystem using the os package.
type OSFileSystem struct{}

// Open opens the named file.
func (OSFileSystem) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// CreateTemp creates a temporary file.
func (OSFileSystem) CreateTemp(dir, pattern string) (TempFile, error) {
	return os.CreateTemp(dir, pattern)
}

// Rename renames a file.
func (OSFileSystem) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

// Remove removes the named file.
func (OSFileSystem) Remove(name string) error {
	return os.Remove(name)
}

// Exists checks if a file exists.
func (OSFileSystem) Exists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}

// MemoryFileSystem provides an in-memory filesystem for testing.
type MemoryFileSystem struct {
	mu      sync.RWMutex
	files   map[string][]byte
	tempSeq int
}

// NewMemoryFileSystem creates a new in-memory filesystem.
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{files: make(map[string][]byte)}
}

// WriteFile stores data under name.
func (m *MemoryFileSystem) WriteFile(name string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[filepath.Clean(name)] = append([]byte(nil), data...)
}

// ReadFile returns a copy of the named file's contents.
func (m *MemoryFileSystem) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = filepath.Clean(name)
	data, ok := m.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

// Names returns every stored file name in sorted order.
func (m *MemoryFileSystem) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.files))
	for name := range m.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open opens a file for reading.
func (m *MemoryFileSystem) Open(name string) (fs.File, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = filepath.Clean(name)
	data, ok := m.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return &memFileReader{name: name, data: data}, nil
}

// CreateTemp creates an empty file whose name replaces the last "*" in
// pattern with a sequence number.
func (m *MemoryFileSystem) CreateTemp(dir, pattern string) (TempFile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tempSeq++
	seq := fmt.Sprintf("%d", m.tempSeq)
	base := pattern + seq
	if i := strings.LastIndex(pattern, "*"); i >= 0 {
		base = pattern[:i] + seq + pattern[i+1:]
	}
	name := filepath.Join(dir, base)
	m.files[name] = []byte{}
	return &memFileWriter{fs: m, name: name}, nil
}

// Rename moves a file.
func (m *MemoryFileSystem) Rename(oldpath, newpath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	oldpath, newpath = filepath.Clean(oldpath), filepath.Clean(newpath)
	data, ok := m.files[oldpath]
	if !ok {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: fs.ErrNotExist}
	}
	delete(m.files, oldpath)
	m.files[newpath] = data
	return nil
}

// Remove removes a file.
func (m *MemoryFileSystem) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = filepath.Clean(name)
	if _, ok := m.files[name]; !ok {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
	}
	delete(m.files, name)
	return nil
}

// Exists checks if a file exists.
func (m *MemoryFileSystem) Exists(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.files[filepath.Clean(name)]
	return ok
}

// memFileReader implements fs.File for reading.
type memFileReader struct {
	name   string
	data   []byte
	offset int
}

func (f *memFileReader) Read(p []byte) (int, error) {
	if f.offset >= len(f.data) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.offset:])
	f.offset += n
	return n, nil
}

func (f *memFileReader) Close() error { return nil }

func (f *memFileReader) Stat() (fs.FileInfo, error) {
	return &memFileInfo{name: filepath.Base(f.name), size: int64(len(f.data))}, nil
}

// memFileWriter buffers writes and commits them on Close.
type memFileWriter struct {
	fs   *MemoryFileSystem
	name string
	buf  []byte
}

func (f *memFileWriter) Write(p []byte) (int, error) {
	f.buf = append(f.buf, p...)
	return len(p), nil
}

func (f *memFileWriter) Name() string { return f.name }

func (f *memFileWriter) Close() error {
	f.fs.mu.Lock()
	defer f.fs.mu.Unlock()
	if _, ok := f.fs.files[f.name]; ok {
		f.fs.files[f.name] = f.buf
	}
	return nil
}

// memFileInfo implements fs.FileInfo.
type memFileInfo struct {
	name string
	size int64
}

func (i *memFileInfo) Name() string       { return i.name }
func (i *memFileInfo) Size() int64        { return i.size }
func (i *memFileInfo) Mode() os.FileMode  { return 0644 }
func (i *memFileInfo) ModTime() time.Time { return time.Time{} }
func (i *memFileInfo) IsDir() bool        { return false }
func (i *memFileInfo) Sys() any           { return nil }
