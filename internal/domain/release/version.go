package release

import "strings"

// LatestVersion is the token requesting redirect-based version resolution.
const LatestVersion = "latest"

// IsLatest reports whether the version spec requests the newest release.
func IsLatest(version string) bool {
	return version == LatestVersion
}

// PackageVersion normalizes a version spec to the form embedded in package
// filenames: any leading "v" is stripped.
func PackageVersion(version string) string {
	return strings.TrimPrefix(version, "v")
}

// TagVersion normalizes a version spec to the form used in release tags:
// a leading "v" is guaranteed.
func TagVersion(version string) string {
	return "v" + PackageVersion(version)
}
