// Package installer hands a downloaded package file to the OS package
// manager. It is a thin adapter: no retries, no rollback, any installer
// failure is fatal for the run.
package installer
