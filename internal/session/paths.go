// Package session knows where a named session keeps its files on disk and
// which names are legal. Everything lives under ~/.wab/sessions/<name>/.
package session

import (
	"os"
	"path/filepath"
)

// BaseDir returns ~/.wab.
func BaseDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".wab")
}

// Dir returns the directory holding all state for a named session.
func Dir(name string) string {
	return filepath.Join(BaseDir(), "sessions", name)
}

// SocketPath returns the UDS socket the daemon serves RPC on.
func SocketPath(name string) string {
	return filepath.Join(Dir(name), "daemon.sock")
}

// LockPath returns the single-daemon lock file path.
func LockPath(name string) string {
	return filepath.Join(Dir(name), "LOCK")
}

// SessionDBPath returns the whatsmeow credential database path.
func SessionDBPath(name string) string {
	return filepath.Join(Dir(name), "session.db")
}

// AppDBPath returns the app-owned mirror database path.
func AppDBPath(name string) string {
	return filepath.Join(Dir(name), "wab.db")
}

// LogDir returns the log directory for a session.
func LogDir(name string) string {
	return filepath.Join(Dir(name), "logs")
}

// LogPath returns the daemon log file path.
func LogPath(name string) string {
	return filepath.Join(LogDir(name), "wabd.log")
}

// ConfigPath returns the global config file path.
func ConfigPath() string {
	return filepath.Join(BaseDir(), "config.toml")
}

// EnsureDir creates the session directory tree. Permissions are 0700: the
// credential database and the RPC socket must not be visible to other users.
func EnsureDir(name string) error {
	for _, d := range []string{Dir(name), LogDir(name)} {
		if err := os.MkdirAll(d, 0700); err != nil {
			return err
		}
	}
	return nil
}
