// Package locate reproduces the standard terminfo database search path, so
// a caller can go from a terminal name to an open compiled description
// without knowing where any particular system keeps its terminfo tree.
//
// See https://manpages.debian.org/buster/ncurses-bin/terminfo.5.en.html#Fetching_Compiled_Descriptions
// for the layout this follows: a per-user override, colon-separated extra
// directories, a Termux-style PREFIX tree, then the standard system
// locations, each checked in both the traditional first-letter directory
// layout and the hex-prefix layout some distributions use instead.
package locate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FromName opens the compiled terminfo description for the given terminal
// name, searching the standard set of terminfo directories. The caller owns
// the returned file and must Close it.
func FromName(name string) (*os.File, error) {
	if name == "" {
		return nil, errNotFound(name)
	}
	first := name[0]

	for _, dir := range searchDirs() {
		if _, err := os.Stat(dir); err != nil {
			continue
		}

		standard := filepath.Join(dir, string(first), name)
		if f, err := os.Open(standard); err == nil {
			return f, nil
		}

		hex := filepath.Join(dir, fmt.Sprintf("%x", first), name)
		if f, err := os.Open(hex); err == nil {
			return f, nil
		}
	}

	return nil, errNotFound(name)
}

// FromEnv is FromName using the TERM environment variable.
func FromEnv() (*os.File, error) {
	term := os.Getenv("TERM")
	if term == "" {
		return nil, errNotFound("")
	}
	return FromName(term)
}

// searchDirs builds the ordered list of candidate terminfo root
// directories, following the same precedence as the reference
// implementation: an explicit TERMINFO override, or else a per-user
// ~/.terminfo; then TERMINFO_DIRS; then a Termux-style PREFIX tree; then
// the standard system locations.
func searchDirs() []string {
	var dirs []string

	if dir := os.Getenv("TERMINFO"); dir != "" {
		dirs = append(dirs, dir)
	} else if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".terminfo"))
	}

	if extra := os.Getenv("TERMINFO_DIRS"); extra != "" {
		for _, dir := range strings.Split(extra, ":") {
			if dir != "" {
				dirs = append(dirs, dir)
			}
		}
	}

	if prefix := os.Getenv("PREFIX"); prefix != "" {
		dirs = append(dirs,
			filepath.Join(prefix, "etc/terminfo"),
			filepath.Join(prefix, "lib/terminfo"),
			filepath.Join(prefix, "share/terminfo"),
		)
	}

	dirs = append(dirs,
		"/etc/terminfo",
		"/lib/terminfo",
		"/usr/share/terminfo",
		"/boot/system/data/terminfo",
	)

	return dirs
}

// NotFoundError reports that no terminfo directory in the search path held
// a description for the given name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	if e.Name == "" {
		return "locate: TERM is not set"
	}
	return fmt.Sprintf("locate: no terminfo entry for %q", e.Name)
}

func errNotFound(name string) error {
	return &NotFoundError{Name: name}
}
