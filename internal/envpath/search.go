package envpath

import (
	"log/slog"
	"strings"

	"github.com/giantswarm/procenv/internal/logging"
)

// Env is the subset of host.Host the search needs.
type Env interface {
	LookupEnv(name string) (string, bool)
	Exists(path string) bool
	ListSeparator() byte
	Separator() byte
}

// Dirs splits a path-list value on sep and returns the non-empty entries
// in their original order. Leading, trailing and doubled separators yield
// nothing.
func Dirs(value string, sep byte) []string {
	var dirs []string
	for dir := range strings.SplitSeq(value, string(sep)) {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// isSeparator reports whether c separates path components. Windows paths
// accept '/' alongside '\'.
func isSeparator(c, sep byte) bool {
	return c == sep || (sep == '\\' && c == '/')
}

// separators returns the byte set isSeparator accepts, for use with
// strings.TrimLeft.
func separators(sep byte) string {
	if sep == '\\' {
		return "\\/"
	}
	return string(sep)
}

// Join appends file to dir with exactly one separator between them. Every
// leading separator of file is dropped. Unlike filepath.Join it does not
// clean the result, so the directory is kept as the variable spelled it.
func Join(dir, file string, sep byte) string {
	if dir == "" {
		return file
	}
	file = strings.TrimLeft(file, separators(sep))
	switch {
	case file == "":
		return dir
	case isSeparator(dir[len(dir)-1], sep):
		return dir + file
	default:
		return dir + string(sep) + file
	}
}

// Find returns the first directory listed in the environment variable
// envName that contains fileName, joined with fileName. It reports false
// when the variable is unset or no listed directory has the file; the two
// cases are deliberately indistinguishable.
//
// Search records go to logger at debug level; a nil logger selects the
// package-level one.
func Find(env Env, logger *slog.Logger, envName, fileName string) (string, bool) {
	if logger == nil {
		logger = logging.Logger()
	}
	value, ok := env.LookupEnv(envName)
	if !ok {
		logger.Debug("path variable not set", "env", envName)
		return "", false
	}
	return search(env, logger, value, fileName)
}

// search probes the directories of value in order and stops at the first hit.
func search(env Env, logger *slog.Logger, value, fileName string) (string, bool) {
	sep := env.Separator()
	for _, dir := range Dirs(value, env.ListSeparator()) {
		candidate := Join(dir, fileName, sep)
		if env.Exists(candidate) {
			logger.Debug("found file in path", "file", fileName, "path", candidate)
			return candidate, true
		}
	}
	logger.Debug("file not found in path", "file", fileName)
	return "", false
}

// FindAll returns every joined path in envName's directories that exists,
// in list order. The first element, if any, is what Find returns; the rest
// are shadowed by it.
func FindAll(env Env, envName, fileName string) []string {
	value, ok := env.LookupEnv(envName)
	if !ok {
		return nil
	}
	sep := env.Separator()
	var found []string
	for _, dir := range Dirs(value, env.ListSeparator()) {
		if candidate := Join(dir, fileName, sep); env.Exists(candidate) {
			found = append(found, candidate)
		}
	}
	return found
}
