package credentials

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"signal-sticker-tool/src/ui"
)

// Credentials is the username/password pair for the sticker service.
// The password is only ever written to the owner-only credentials
// file and the upload request; it must never appear in program output.
type Credentials struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// DefaultPath computes the credentials file location under the user
// configuration directory. Called once at startup; components receive
// the resolved path explicitly.
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		// Degenerate environment without HOME; keep the file local.
		return "credentials.yaml"
	}
	return filepath.Join(base, "signal-sticker-tool", "credentials.yaml")
}

// Save writes the pair to path, replacing any previous file. The
// parent directory is created with owner-only permissions and the
// file itself is 0600.
func Save(path string, creds Credentials) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create credentials directory: %w", err)
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove previous credentials: %w", err)
	}
	data, err := yaml.Marshal(creds)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write credentials: %w", err)
	}
	return f.Close()
}

// Load reads the pair from path. A missing file is a user-facing
// "not logged in" condition; a present file without both fields is
// reported as having no usable credentials.
func Load(path string) (Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Credentials{}, ui.Abortf("not logged in; run 'signal-sticker-tool login' first")
		}
		return Credentials{}, fmt.Errorf("read credentials: %w", err)
	}
	var creds Credentials
	if err := yaml.Unmarshal(data, &creds); err != nil {
		return Credentials{}, fmt.Errorf("parse credentials %s: %w", path, err)
	}
	creds.Username = strings.TrimSpace(creds.Username)
	if creds.Username == "" || creds.Password == "" {
		return Credentials{}, ui.Abortf("credentials file %s holds no usable credentials; run 'signal-sticker-tool login' again", path)
	}
	return creds, nil
}

// Delete removes the credentials file. A file that is already absent
// is not an error.
func Delete(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}
