package release

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestVersionNormalization checks both normal forms and their idempotence
// under the v-prefix normalization.
func TestVersionNormalization(t *testing.T) {
	t.Parallel()

	require.Equal(t, "1.2.3", PackageVersion("1.2.3"))
	require.Equal(t, "1.2.3", PackageVersion("v1.2.3"))
	require.Equal(t, "v1.2.3", TagVersion("1.2.3"))
	require.Equal(t, "v1.2.3", TagVersion("v1.2.3"))

	// Applying the normalizations twice changes nothing.
	require.Equal(t, PackageVersion("v1.2.3"), PackageVersion(PackageVersion("v1.2.3")))
	require.Equal(t, TagVersion("v1.2.3"), TagVersion(TagVersion("v1.2.3")))
}

// TestIsLatest recognizes only the literal token.
func TestIsLatest(t *testing.T) {
	t.Parallel()

	require.True(t, IsLatest("latest"))
	require.False(t, IsLatest("v1.2.3"))
	require.False(t, IsLatest(""))
	require.False(t, IsLatest("Latest"))
}
