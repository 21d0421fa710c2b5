// Package envpath locates a file among the directories listed in a
// path-list environment variable such as PATH.
//
// The variable is split on the host's list separator, empty entries are
// skipped, and directories are probed left to right; the first hit wins.
// Resolver adds a memoizing front end for callers that resolve the same
// tools repeatedly.
package envpath
