// Package release models the agent release tracks: which channel a build
// comes from, which command name that channel installs, how version strings
// are normalized between package and tag forms, and where each channel keeps
// its diagnostic log.
//
// Everything in this package is a pure computation; environment access is
// confined to DefaultStateDir.
package release
