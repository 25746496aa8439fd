// seehuhn.de/go/fontkit - a library for reading and matching OpenType/TrueType fonts
// Copyright (C) 2026  fontkit contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package registry

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// FileSystem is the external collaborator boundary: filesystem
// enumeration and reads are someone else's problem (a real disk, an
// embedded archive, a test fixture), not the registry's. The registry
// itself only ever calls these three methods.
type FileSystem interface {
	// FontDirectories returns the system and per-user locations to
	// search. The registry walks each returned entry exactly once.
	FontDirectories() []string
	// ReadAll synchronously reads the full contents of path.
	ReadAll(path string) ([]byte, error)
	// Walk recursively enumerates every file path under root.
	Walk(root string) ([]string, error)
}

// defaultFileSystem is the conventional collaborator: it scans the
// platform's standard font directories on local disk.
type defaultFileSystem struct{}

// DefaultFileSystem returns a FileSystem that walks the current
// platform's standard font directories. It is provided as a
// convenience default, not as part of the matching/scoring contract:
// a host embedding fontkit in, say, a sandboxed or virtual filesystem
// should supply its own FileSystem instead.
func DefaultFileSystem() FileSystem {
	return defaultFileSystem{}
}

func (defaultFileSystem) FontDirectories() []string {
	return filterExistingDirs(systemFontDirs())
}

func (defaultFileSystem) ReadAll(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (defaultFileSystem) Walk(root string) ([]string, error) {
	var paths []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // unreadable entry; skip rather than abort the walk
		}
		if !info.IsDir() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// systemFontDirs returns the conventional font directories for the
// running GOOS. There is deliberately only one list here: the source
// this is grounded on keeps a separate "local" list that duplicates
// the "system" list verbatim; a registry need only enumerate each
// directory once.
func systemFontDirs() []string {
	switch runtime.GOOS {
	case "darwin":
		return darwinFontDirs()
	case "windows":
		return windowsFontDirs()
	default:
		return linuxFontDirs()
	}
}

func darwinFontDirs() []string {
	home, _ := os.UserHomeDir()
	dirs := []string{
		"/System/Library/Fonts",
		"/Library/Fonts",
	}
	if home != "" {
		dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
	}
	return dirs
}

func linuxFontDirs() []string {
	dirs := []string{
		"/usr/share/fonts",
		"/usr/local/share/fonts",
	}
	if xdg := os.Getenv("XDG_DATA_DIRS"); xdg != "" {
		for _, d := range strings.Split(xdg, ":") {
			if d != "" {
				dirs = append(dirs, filepath.Join(d, "fonts"))
			}
		}
	}
	home, _ := os.UserHomeDir()
	if home != "" {
		dirs = append(dirs, filepath.Join(home, ".fonts"), filepath.Join(home, ".local", "share", "fonts"))
	}
	return dirs
}

func windowsFontDirs() []string {
	var dirs []string
	if winDir := os.Getenv("WINDIR"); winDir != "" {
		dirs = append(dirs, filepath.Join(winDir, "Fonts"))
	}
	if local := os.Getenv("LOCALAPPDATA"); local != "" {
		dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
	}
	return dirs
}

func filterExistingDirs(dirs []string) []string {
	var out []string
	for _, d := range dirs {
		if info, err := os.Stat(d); err == nil && info.IsDir() {
			out = append(out, d)
		}
	}
	return out
}
