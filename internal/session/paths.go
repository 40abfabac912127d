package session

import (
	"os"
	"path/filepath"
)

// HomeEnv overrides the base directory when set.
const HomeEnv = "WPP_HOME"

// File names inside a session directory.
const (
	socketFile  = "daemon.sock"
	waStoreFile = "session.db"
	storeFile   = "wpp.db"
	logDirName  = "logs"
	logFile     = "wppd.log"
	configFile  = "config.toml"
)

// BaseDir returns $WPP_HOME, or ~/.wpp.
func BaseDir() string {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".wpp")
}

// Dir returns the directory holding everything that belongs to one session.
func Dir(name string) string {
	return filepath.Join(BaseDir(), "sessions", name)
}

func SocketPath(name string) string    { return filepath.Join(Dir(name), socketFile) }
func SessionDBPath(name string) string { return filepath.Join(Dir(name), waStoreFile) }
func StoreDBPath(name string) string   { return filepath.Join(Dir(name), storeFile) }
func LogDir(name string) string        { return filepath.Join(Dir(name), logDirName) }
func LogPath(name string) string       { return filepath.Join(LogDir(name), logFile) }

// ConfigPath returns the config file shared by all sessions.
func ConfigPath() string {
	return filepath.Join(BaseDir(), configFile)
}

// EnsureDir creates the session directory and its log directory, owner-only.
func EnsureDir(name string) error {
	for _, d := range []string{Dir(name), LogDir(name)} {
		if err := os.MkdirAll(d, 0700); err != nil {
			return err
		}
	}
	return nil
}
