package procfs

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

const (
	// DefaultRoot is where procfs is mounted on a normal Linux host.
	DefaultRoot = "/proc"

	// ChunkSize bounds every individual read. procfs files are
	// generated on each read, so small reads keep the kernel work per
	// call small.
	ChunkSize = 128
)

// FS is a procfs tree rooted at an arbitrary directory.
type FS struct {
	root string
}

// NewFS opens root once to confirm it is a usable directory. A root
// that cannot be opened yields an error matching ErrInvalidRoot.
func NewFS(root string) (FS, error) {
	fd, err := openDir(root)
	if err != nil {
		return FS{}, &Error{Op: "opendir", Path: root, Kind: ErrInvalidRoot, Err: err}
	}
	unix.Close(fd)
	return FS{root: root}, nil
}

// Root returns the directory the tree is rooted at.
func (fs FS) Root() string { return fs.root }

// Path resolves name against the root.
func (fs FS) Path(name string) string {
	return filepath.Join(fs.root, name)
}

// File is an open procfs file. It is owned by a single caller and must
// be closed by it.
type File struct {
	fd   int
	path string
}

// Open opens name read-only. Missing files and permission problems
// are reported as ErrUnavailable.
func (fs FS) Open(name string) (*File, error) {
	path := fs.Path(name)
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, &Error{Op: "open", Path: path, Kind: ErrUnavailable, Err: err}
	}
	return &File{fd: fd, path: path}, nil
}

// Read reads up to len(p) bytes. It returns io.EOF once the file is
// exhausted and an error matching ErrReadFailure if the read itself
// fails.
func (f *File) Read(p []byte) (int, error) {
	for {
		n, err := unix.Read(f.fd, p)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, &Error{Op: "read", Path: f.path, Kind: ErrReadFailure, Err: err}
		}
		if n == 0 && len(p) > 0 {
			return 0, io.EOF
		}
		return n, nil
	}
}

// Close releases the descriptor.
func (f *File) Close() error {
	return unix.Close(f.fd)
}

// Chunks opens name and hands it to fn one bounded read at a time. fn
// returns false to stop early. The file is closed on every path,
// including after a failed read.
func (fs FS) Chunks(name string, fn func(chunk []byte) bool) error {
	file, err := fs.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()

	buf := make([]byte, ChunkSize)
	for {
		n, err := file.Read(buf)
		if n > 0 && !fn(buf[:n]) {
			return nil
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// ReadFile reads name to the end in ChunkSize reads, accumulating the
// chunks so that a label split across two reads is still whole when
// the caller scans it. On a read failure the bytes read so far are
// returned together with the error.
func (fs FS) ReadFile(name string) ([]byte, error) {
	var data []byte
	err := fs.Chunks(name, func(chunk []byte) bool {
		data = append(data, chunk...)
		return true
	})
	return data, err
}

// TaskDirs lists the digits-only entries of the root in the order the
// directory yields them. Nothing is sorted here.
func (fs FS) TaskDirs() ([]string, error) {
	dir, err := os.Open(fs.root)
	if err != nil {
		return nil, &Error{Op: "opendir", Path: fs.root, Kind: ErrUnavailable, Err: err}
	}
	defer dir.Close()

	names, err := dir.Readdirnames(-1)
	if err != nil {
		return nil, &Error{Op: "readdir", Path: fs.root, Kind: ErrReadFailure, Err: err}
	}

	tasks := names[:0]
	for _, name := range names {
		if IsNumeric(name) {
			tasks = append(tasks, name)
		}
	}
	return tasks, nil
}

// IsDir reports whether name can currently be opened as a directory.
// A task that exited after TaskDirs listed it simply reports false.
func (fs FS) IsDir(name string) bool {
	fd, err := openDir(fs.Path(name))
	if err != nil {
		return false
	}
	unix.Close(fd)
	return true
}

func openDir(path string) (int, error) {
	return unix.Open(path, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
}
