package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteAtomic replaces the file at path with data.
//
// The bytes go to a temporary sibling first and are renamed over path only once
// fully written and synced, so readers observe either the previous file or the
// complete new one. The temporary file is removed on every failure path.
func WriteAtomic(path string, data []byte, perm os.FileMode) (err error) {
	fs := API()
	dir, name := filepath.Split(filepath.Clean(path))
	if dir == "" {
		dir = "."
	}

	if err = fs.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	if isDir, _ := fs.IsDir(path); isDir {
		return fmt.Errorf("%s is a directory", path)
	}

	tmp, err := fs.TempFile(dir, "."+name+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = fs.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = fs.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = fs.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
