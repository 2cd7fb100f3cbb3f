// Package locator turns a release channel and version spec into a locally
// available installable package.
//
// The platform gate runs before any network I/O. A "latest" spec is resolved
// through the vendor's download-redirect endpoint with redirect-following
// disabled; concrete specs build the release URL directly. Downloads land in
// the tool cache so later runs with the same channel and version skip the
// network entirely.
package locator
