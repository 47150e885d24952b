package domain

import "path/filepath"

// Well-known file and directory names.
const (
	MdtaskDirName       = ".mdtask"
	ConfigFileName      = "config.toml"
	DefaultTaskFileName = "tasks.md"
	LogFileName         = "mdtask.log"
)

// MdtaskDir returns the per-project state directory under root.
func MdtaskDir(root string) string {
	return filepath.Join(root, MdtaskDirName)
}

// GlobalConfigDir returns the global config directory under configHome
// (typically $XDG_CONFIG_HOME or ~/.config).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, "mdtask")
}

// LogPath returns the log file path under the mdtask directory.
func LogPath(mdtaskDir string) string {
	return filepath.Join(mdtaskDir, "logs", LogFileName)
}
