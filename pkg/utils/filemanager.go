// =============================================================================
// NACHA Validator - File Manager Utility
// =============================================================================
//
// File management utilities for batch validation:
//   - ACH file discovery in the input directory
//   - Archival of cleanly validated files
//   - Directory management
//
// ARCHIVAL STRATEGY:
//   - Files are moved to the archive directory only after validating with
//     zero Error-severity diagnostics.
//   - Files with findings remain in place for correction and re-validation.
//   - A rename is attempted first; across filesystems the move falls back
//     to copy-then-remove.
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file discovery and archival for batch validation.
type FileManager struct {
	// InputDir is the directory scanned for ACH files.
	InputDir string

	// ArchiveDir is the directory receiving cleanly validated files.
	ArchiveDir string

	// Extensions are the file extensions treated as ACH files, with the
	// leading dot (".ach", ".txt"). An empty list matches nothing.
	Extensions []string
}

// NewFileManager creates a FileManager for the given directories.
func NewFileManager(inputDir, archiveDir string, extensions []string) *FileManager {
	return &FileManager{
		InputDir:   inputDir,
		ArchiveDir: archiveDir,
		Extensions: extensions,
	}
}

// =============================================================================
// FILE DISCOVERY
// =============================================================================

// DiscoverInputFiles walks the input directory and returns every file whose
// extension matches the configured list.
func (fm *FileManager) DiscoverInputFiles() ([]string, error) {
	var files []string

	err := filepath.Walk(fm.InputDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if fm.matchesExtension(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan input directory %s: %w", fm.InputDir, err)
	}

	return files, nil
}

// matchesExtension reports whether the file's extension is configured as an
// ACH extension. Matching is case-insensitive.
func (fm *FileManager) matchesExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range fm.Extensions {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// =============================================================================
// ARCHIVAL
// =============================================================================

// ArchiveFile moves a file into the archive directory, creating it if
// needed. Rename is tried first; cross-device moves fall back to copying.
func (fm *FileManager) ArchiveFile(path string) (string, error) {
	if err := os.MkdirAll(fm.ArchiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	dest := filepath.Join(fm.ArchiveDir, filepath.Base(path))

	if err := os.Rename(path, dest); err == nil {
		return dest, nil
	}

	if err := copyFile(path, dest); err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", path, err)
	}
	if err := os.Remove(path); err != nil {
		return "", fmt.Errorf("failed to remove %s after archiving: %w", path, err)
	}
	return dest, nil
}

// copyFile copies src to dst, preserving nothing but the bytes.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
