// Package toolcache persists downloaded installable packages between runs.
//
// Entries are addressed by tool name and cache key (channel plus resolved
// version). Each entry directory contains the package file and a YAML
// manifest with the file's checksum; entries that fail verification are
// treated as absent so a fresh download replaces them.
package toolcache
