// Package fsutil contains utilities for working with the dataset files on disk.
package fsutil

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// MustFileExists returns whether the file or directory exists.
// It panics on file system errors.
func MustFileExists(path string) bool {
	exists, err := FileExists(path)
	if err != nil {
		panic(err)
	}
	return exists
}

// FileExists returns whether the file or directory exists or an error if something went wrong in the filesystem.
func FileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, errors.Wrapf(err, "failed to FileExists(%q)", path)
}

// ReplaceTildeInDir by the user's home directory. Returns dir if it doesn't start with "~".
//
// It returns an error if `dir` has an unknown user (e.g: `~unknown/...`).
func ReplaceTildeInDir(dir string) (string, error) {
	if dir == "" || dir[0] != '~' {
		return dir, nil
	}
	var userName string
	if dir != "~" && !strings.HasPrefix(dir, "~/") {
		userName, _, _ = strings.Cut(dir[1:], "/")
	}
	var usr *user.User
	var err error
	if userName == "" {
		usr, err = user.Current()
	} else {
		usr, err = user.Lookup(userName)
	}
	if err != nil {
		return "", errors.Wrapf(err, "failed to lookup home directory for user in path %q", dir)
	}
	return filepath.Join(usr.HomeDir, dir[1+len(userName):]), nil
}

// ValidateChecksum verifies that the sha256 of the file in the given path matches checkHash.
// If it doesn't, the file is removed (!) so a later call re-downloads it, and an error is returned.
func ValidateChecksum(path, checkHash string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "failed to open %q to validate checksum", path)
	}
	hasher := sha256.New()
	_, err = io.Copy(hasher, f)
	_ = f.Close()
	if err != nil {
		return errors.Wrapf(err, "failed to read %q to validate checksum", path)
	}
	fileHash := hex.EncodeToString(hasher.Sum(nil))
	if fileHash == strings.ToLower(checkHash) {
		return nil
	}
	if e2 := os.Remove(path); e2 != nil {
		klog.Warningf("Failed to remove %q, which failed the checksum test, please remove it: %+v", path, e2)
	}
	return errors.Errorf("file %q sha256 hash is %q, but expected %q, file deleted", path, fileHash, checkHash)
}

// ListClassFiles lists the files of a directory organized with one sub-directory per class,
// as "<class>/<file>".
//
// Class directories and the files within are sorted by name, so the listing is deterministic.
// Hidden entries (starting with ".") are skipped, and so are plain files directly under dir.
// The returned paths are relative to dir, using "/" as separator.
func ListClassFiles(dir string) ([]string, error) {
	classEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list class directories in %q", dir)
	}
	var classes []string
	for _, entry := range classEntries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if !entry.IsDir() {
			klog.Warningf("skipping %q: not a class directory", filepath.Join(dir, entry.Name()))
			continue
		}
		classes = append(classes, entry.Name())
	}
	sort.Strings(classes)

	var files []string
	for _, class := range classes {
		entries, err := os.ReadDir(filepath.Join(dir, class))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list files of class %q in %q", class, dir)
		}
		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
				continue
			}
			names = append(names, entry.Name())
		}
		sort.Strings(names)
		for _, name := range names {
			files = append(files, class+"/"+name)
		}
	}
	return files, nil
}
