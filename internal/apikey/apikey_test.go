package apikey

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fakeEnv returns a Getenv function backed by a map.
func fakeEnv(m map[string]string) func(string) string {
	return func(name string) string {
		return m[name]
	}
}

func writeEnvFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolvePriority(t *testing.T) {
	const fileContents = `
# sparkifire settings
VITE_SUPABASE_URL=https://example.supabase.co
VITE_GEMINI_API_KEY=from-file-vite
GEMINI_API_KEY=from-file-plain
`
	filePath := writeEnvFile(t, fileContents)
	missingPath := filepath.Join(t.TempDir(), "nope", ".env")

	var tests = []struct {
		name    string
		flag    string
		env     map[string]string
		file    string
		wantKey Key
	}{
		{"flag wins", "from-flag",
			map[string]string{EnvVar: "env-a", ViteEnvVar: "env-b"}, filePath,
			Key{"from-flag", "flag --key"}},
		{"env A over env B", "",
			map[string]string{EnvVar: "env-a", ViteEnvVar: "env-b"}, filePath,
			Key{"env-a", "env GEMINI_API_KEY"}},
		{"env A without file", "",
			map[string]string{EnvVar: "env-a"}, missingPath,
			Key{"env-a", "env GEMINI_API_KEY"}},
		{"env B over file", "",
			map[string]string{ViteEnvVar: "env-b"}, filePath,
			Key{"env-b", "env VITE_GEMINI_API_KEY"}},
		{"empty env A falls through", "",
			map[string]string{EnvVar: "", ViteEnvVar: "env-b"}, filePath,
			Key{"env-b", "env VITE_GEMINI_API_KEY"}},
		{"first file line wins", "",
			map[string]string{}, filePath,
			Key{"from-file-vite", "file " + filePath + ":4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resolver{Flag: tt.flag, EnvFile: tt.file, Getenv: fakeEnv(tt.env)}
			got, err := r.Resolve()
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.wantKey, got); diff != "" {
				t.Errorf("key mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveFileParsing(t *testing.T) {
	var tests = []struct {
		contents string
		want     string
	}{
		{"GEMINI_API_KEY=abc\n", "abc"},
		{"   GEMINI_API_KEY =   abc   \n", "abc"},
		{"GEMINI_API_KEY=\"abc\"\n", "abc"},
		{"GEMINI_API_KEY='abc'\n", "abc"},
		{"export GEMINI_API_KEY=abc\n", "abc"},
		{"GEMINI_API_KEY=abc=def\n", "abc=def"},
		{"GEMINI_API_KEY=abc # personal key\n", "abc"},
		{"OTHER=x\nGEMINI_API_KEY=second\n", "second"},
		{"GEMINI_API_KEY\nVITE_GEMINI_API_KEY=after-bare-name\n", "after-bare-name"},
		{"GEMINI_API_KEY=first\nGEMINI_API_KEY=second\n", "first"},
		{"GEMINI_API_KEY=no-trailing-newline", "no-trailing-newline"},
	}

	for _, tt := range tests {
		t.Run(tt.contents, func(t *testing.T) {
			r := Resolver{EnvFile: writeEnvFile(t, tt.contents), Getenv: fakeEnv(nil)}
			got, err := r.Resolve()
			if err != nil {
				t.Fatal(err)
			}
			if got.Value != tt.want {
				t.Errorf("got %q, want %q", got.Value, tt.want)
			}
		})
	}
}

func TestResolveNotFound(t *testing.T) {
	var tests = []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(t.TempDir(), ".env")},
		{"no matching line", writeEnvFile(t, "OPENAI_API_KEY=xyz\nVITE_STRIPE_KEY=pk\n")},
		{"empty value stops scan", writeEnvFile(t, "GEMINI_API_KEY=\nVITE_GEMINI_API_KEY=later\n")},
		{"empty file", writeEnvFile(t, "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resolver{EnvFile: tt.path, Getenv: fakeEnv(nil)}
			_, err := r.Resolve()
			if !errors.Is(err, ErrNotFound) {
				t.Fatalf("got err %v, want ErrNotFound", err)
			}
			if !strings.Contains(err.Error(), tt.path) {
				t.Errorf("error %q does not mention %s", err, tt.path)
			}
		})
	}
}

func TestResolveUnreadableFile(t *testing.T) {
	if runtime.GOOS == "windows" || os.Getuid() == 0 {
		t.Skip("file permissions are not enforced")
	}
	path := writeEnvFile(t, "GEMINI_API_KEY=abc\n")
	if err := os.Chmod(path, 0); err != nil {
		t.Fatal(err)
	}

	r := Resolver{EnvFile: path, Getenv: fakeEnv(nil)}
	_, err := r.Resolve()
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("got err %v, want read error", err)
	}
}

func TestResolveMalformedLine(t *testing.T) {
	path := writeEnvFile(t, "GEMINI_API_KEY=\"unterminated\n")
	r := Resolver{EnvFile: path, Getenv: fakeEnv(nil)}
	_, err := r.Resolve()
	if err == nil {
		t.Fatal("expected error for unterminated quote")
	}
	if !strings.Contains(err.Error(), path+":1") {
		t.Errorf("error %q does not point at the line", err)
	}
}

func TestRedact(t *testing.T) {
	var tests = []struct {
		key  string
		want string
	}{
		{"", "****"},
		{"ABC123", "****"},
		{"AIzaSyD-0123456789", "AIza...6789"},
	}

	for _, tt := range tests {
		if got := Redact(tt.key); got != tt.want {
			t.Errorf("Redact(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
