package procfs

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

func writeFile(t *testing.T, root, name, content string) {
	t.Helper()
	path := filepath.Join(root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func newTestFS(t *testing.T) (FS, string) {
	t.Helper()
	root := t.TempDir()
	fs, err := NewFS(root)
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return fs, root
}

func TestNewFSInvalidRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	_, err := NewFS(missing)
	if !errors.Is(err, ErrInvalidRoot) {
		t.Fatalf("NewFS(%q) error = %v, want ErrInvalidRoot", missing, err)
	}
	if IsSoft(err) {
		t.Fatal("invalid root reported as soft")
	}

	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFS(file); !errors.Is(err, ErrInvalidRoot) {
		t.Fatalf("NewFS on a regular file error = %v", err)
	}
}

func TestOpenMissingIsUnavailable(t *testing.T) {
	fs, _ := newTestFS(t)
	_, err := fs.Open("uptime")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Open error = %v, want ErrUnavailable", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Open error = %v, want to wrap ENOENT", err)
	}
	if !IsSoft(err) {
		t.Fatal("unavailable file not reported as soft")
	}
	var pe *Error
	if !errors.As(err, &pe) || pe.Op != "open" || !strings.HasSuffix(pe.Path, "uptime") {
		t.Fatalf("unexpected error detail: %#v", pe)
	}
}

func TestChunksAreBounded(t *testing.T) {
	fs, root := newTestFS(t)
	content := strings.Repeat("x", ChunkSize*2+17)
	writeFile(t, root, "stat", content)

	var sizes []int
	err := fs.Chunks("stat", func(chunk []byte) bool {
		sizes = append(sizes, len(chunk))
		return true
	})
	if err != nil {
		t.Fatalf("Chunks: %v", err)
	}
	if len(sizes) != 3 || sizes[0] != ChunkSize || sizes[1] != ChunkSize || sizes[2] != 17 {
		t.Fatalf("chunk sizes = %v", sizes)
	}
}

func TestChunksStopEarly(t *testing.T) {
	fs, root := newTestFS(t)
	writeFile(t, root, "stat", strings.Repeat("y", ChunkSize*4))

	calls := 0
	err := fs.Chunks("stat", func([]byte) bool {
		calls++
		return false
	})
	if err != nil || calls != 1 {
		t.Fatalf("calls = %d, err = %v", calls, err)
	}
}

func TestReadFileJoinsLabelAcrossChunks(t *testing.T) {
	fs, root := newTestFS(t)
	// Place "processes" so that it straddles the first chunk boundary.
	padding := strings.Repeat("a", ChunkSize-4) + "\n"
	writeFile(t, root, "stat", padding+"processes 4242\n")

	data, err := fs.ReadFile("stat")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "processes 4242") {
		t.Fatalf("accumulated data lost the straddling label: %q", data)
	}
	if len(data) != len(padding)+len("processes 4242\n") {
		t.Fatalf("len = %d", len(data))
	}
}

func TestReadFileEmpty(t *testing.T) {
	fs, root := newTestFS(t)
	writeFile(t, root, "loadavg", "")
	data, err := fs.ReadFile("loadavg")
	if err != nil || len(data) != 0 {
		t.Fatalf("data = %q, err = %v", data, err)
	}
}

func TestTaskDirsFiltersDigits(t *testing.T) {
	fs, root := newTestFS(t)
	for _, dir := range []string{"1", "42", "self", "12a", "sys"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			t.Fatal(err)
		}
	}
	writeFile(t, root, "777", "not a dir")

	names, err := fs.TaskDirs()
	if err != nil {
		t.Fatalf("TaskDirs: %v", err)
	}
	sort.Strings(names)
	want := []string{"1", "42", "777"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("TaskDirs = %v, want %v", names, want)
	}

	if !fs.IsDir("42") {
		t.Fatal("IsDir(42) = false")
	}
	if fs.IsDir("777") {
		t.Fatal("IsDir on a regular file = true")
	}
	if fs.IsDir("9999") {
		t.Fatal("IsDir on a vanished entry = true")
	}
}

func TestParseHelpers(t *testing.T) {
	if got := ParseInt(" 8\n"); got != 8 {
		t.Fatalf("ParseInt = %d", got)
	}
	if got := ParseInt("abc"); got != 0 {
		t.Fatalf("ParseInt(malformed) = %d", got)
	}
	if got := ParseFloat("123456.78"); got != 123456.78 {
		t.Fatalf("ParseFloat = %v", got)
	}
	for _, in := range []string{"", "inf", "-Inf", "NaN", "+infinity"} {
		if got := ParseFloat(in); got != 0 {
			t.Fatalf("ParseFloat(%q) = %v", in, got)
		}
	}
	if got := ParseFloat("1e30"); got != 1e30 {
		t.Fatalf("ParseFloat(1e30) = %v", got)
	}
	for name, want := range map[string]bool{"123": true, "": false, "1a": false, "-1": false, "007": true} {
		if got := IsNumeric(name); got != want {
			t.Errorf("IsNumeric(%q) = %v, want %v", name, got, want)
		}
	}
	if lines := Lines([]byte("a\nb\n")); len(lines) != 2 || lines[1] != "b" {
		t.Fatalf("Lines = %q", lines)
	}
	if lines := Lines(nil); lines != nil {
		t.Fatalf("Lines(nil) = %q", lines)
	}
}
