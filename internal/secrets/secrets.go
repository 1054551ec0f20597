// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads credentials from a directory of plain-text files.
// Each file in the directory represents one secret: the filename is the key
// name and the file contents (trimmed) are the value.
//
// The only key in use is aoc-session, the puzzle website session cookie.
package secrets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/aoc2017/internal/logging"
)

// SessionKey names the file holding the website session cookie.
const SessionKey = "aoc-session"

// ErrNoSession is returned by Session when no session cookie is stored.
var ErrNoSession = errors.New("no session cookie; write it to .secrets/" + SessionKey + " or set AOC2017_SESSION")

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory or missing files are not errors; Load returns an empty map.
// Unreadable files are logged as warnings but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	log := logging.WithComponent("secrets")
	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Warn().Err(err).Str("key", name).Msg("could not read secret")
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// Session returns the session cookie from dir. A non-empty override, such
// as a value taken from the environment, wins over the file.
func Session(dir, override string) (string, error) {
	if override = strings.TrimSpace(override); override != "" {
		return override, nil
	}
	s, err := Load(dir)
	if err != nil {
		return "", err
	}
	v, ok := s[SessionKey]
	if !ok {
		return "", ErrNoSession
	}
	return v, nil
}
