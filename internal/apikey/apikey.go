// Package apikey resolves the Gemini API key from the places a developer
// typically keeps it: a command-line flag, the environment, or the .env file
// of the web project.
package apikey

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables holding the key, in priority order.
const (
	EnvVar     = "GEMINI_API_KEY"
	ViteEnvVar = "VITE_GEMINI_API_KEY"
)

// DefaultEnvFile is where the web project keeps its environment, relative to
// the working directory.
const DefaultEnvFile = "sparkifire-web/.env"

// ErrNotFound is returned by [Resolver.Resolve] when no source produced a
// non-empty key.
var ErrNotFound = errors.New("no Gemini API key found")

// Key is a resolved API key along with a description of where it came from.
type Key struct {
	Value  string
	Source string
}

// Resolver looks up the API key. The zero value checks the real environment
// and DefaultEnvFile.
type Resolver struct {
	// Flag is the value of an explicit --key flag; it wins when non-empty.
	Flag string

	// EnvFile is the dotenv file to scan. Defaults to DefaultEnvFile.
	EnvFile string

	// Getenv is used to read environment variables; defaults to os.Getenv.
	Getenv func(string) string
}

// Resolve returns the first non-empty key from, in order: the flag,
// GEMINI_API_KEY, VITE_GEMINI_API_KEY, and the first matching line of the
// env file. A missing env file is not an error; if nothing matches the
// returned error wraps ErrNotFound.
func (r Resolver) Resolve() (Key, error) {
	if r.Flag != "" {
		return Key{Value: r.Flag, Source: "flag --key"}, nil
	}

	getenv := r.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	for _, name := range []string{EnvVar, ViteEnvVar} {
		if v := getenv(name); v != "" {
			return Key{Value: v, Source: "env " + name}, nil
		}
	}

	path := r.EnvFile
	if path == "" {
		path = DefaultEnvFile
	}
	key, err := scanEnvFile(path)
	if err != nil {
		return Key{}, err
	}
	if key.Value == "" {
		return Key{}, fmt.Errorf("%w in environment or %s", ErrNotFound, path)
	}
	return key, nil
}

// scanEnvFile looks for the first line of the file at path that assigns one
// of the recognized variables. It returns an empty Key if the file doesn't
// exist or has no such line. A matching line with an empty value still ends
// the scan.
func scanEnvFile(path string) (Key, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Key{}, nil
	} else if err != nil {
		return Key{}, fmt.Errorf("reading env file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if !isKeyLine(line) {
			continue
		}

		env, err := godotenv.Unmarshal(line)
		if err != nil {
			return Key{}, fmt.Errorf("%s:%d: %w", path, lineno, err)
		}
		var value string
		for _, v := range env {
			value = v
		}
		return Key{Value: value, Source: fmt.Sprintf("file %s:%d", path, lineno)}, nil
	}
	if err := scanner.Err(); err != nil {
		return Key{}, fmt.Errorf("reading env file: %w", err)
	}
	return Key{}, nil
}

// isKeyLine reports whether a trimmed dotenv line assigns one of the
// recognized variables. Lines without '=' never match.
func isKeyLine(line string) bool {
	line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	if !strings.Contains(line, "=") {
		return false
	}
	return strings.HasPrefix(line, ViteEnvVar) || strings.HasPrefix(line, EnvVar)
}

// Redact masks a key for display, keeping only enough of it to tell keys
// apart.
func Redact(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
