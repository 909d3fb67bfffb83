package audio

import (
	"os"
	"path/filepath"
)

// AssetsEnv names the environment variable that adds a sound directory.
const AssetsEnv = "SKYSHOOTER_ASSETS"

// SearchDirs returns the directories searched for cue files, in priority
// order: the explicit override, the configured directory, $SKYSHOOTER_ASSETS,
// ~/.skyshooter/sounds and ./assets/sounds. Empty entries are skipped and
// duplicates removed.
func SearchDirs(override, configured string) []string {
	candidates := []string{override, configured, os.Getenv(AssetsEnv)}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".skyshooter", "sounds"))
	}
	candidates = append(candidates, filepath.Join("assets", "sounds"))

	dirs := make([]string, 0, len(candidates))
	seen := make(map[string]bool, len(candidates))
	for _, d := range candidates {
		if d == "" {
			continue
		}
		d = filepath.Clean(d)
		if seen[d] {
			continue
		}
		seen[d] = true
		dirs = append(dirs, d)
	}
	return dirs
}

// findFile returns the first existing regular file named name in dirs.
func findFile(dirs []string, name string) (string, bool) {
	if name == "" {
		return "", false
	}
	if filepath.IsAbs(name) {
		info, err := os.Stat(name)
		return name, err == nil && info.Mode().IsRegular()
	}
	for _, d := range dirs {
		p := filepath.Join(d, name)
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			return p, true
		}
	}
	return "", false
}
