package paths

import (
	"os"
	"path/filepath"
)

const (
	IconsDirName = "icons"
	DirPerm      = 0755
	FilePerm     = 0644
)

// EnsureDir creates dir and any missing parents. An existing directory is
// left as is, including whatever files it already holds.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, DirPerm)
}

// AtomicWrite writes data to path via a uniquely named temporary file +
// rename to avoid partial writes. The parent directory is not created: a
// missing directory is reported as an error. The temp file is removed on
// every failure.
func AtomicWrite(path string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Chmod(FilePerm); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
