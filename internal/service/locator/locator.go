package locator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"runtime"
	"strings"

	"github.com/oshokin/warp-agent-action/internal/domain/release"
	"github.com/oshokin/warp-agent-action/internal/logger"
	"github.com/oshokin/warp-agent-action/internal/repository/toolcache"
)

const (
	// toolName keys cache entries for the agent tool.
	toolName = "oz"

	// packageFilename is the fixed name a package is cached under.
	packageFilename = "oz.deb"

	// packageFormat is the only supported installable package format.
	packageFormat = "deb"

	// supportedOS is the only kernel the agent packages target.
	supportedOS = "linux"

	// defaultDownloadHost serves the version-resolving redirect endpoint.
	defaultDownloadHost = "https://app.warp.dev"

	// defaultReleasesHost serves versioned package files directly.
	defaultReleasesHost = "https://releases.warp.dev"
)

var (
	// ErrUnsupportedPlatform indicates the host kernel cannot run the agent packages.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrUnsupportedArchitecture indicates the host CPU architecture has no published package.
	ErrUnsupportedArchitecture = errors.New("unsupported architecture")

	// ErrRedirectExpected indicates the download endpoint answered with a non-redirect status.
	ErrRedirectExpected = errors.New("expected a redirect from the download endpoint")

	// ErrMissingRedirectLocation indicates a redirect without a location header.
	ErrMissingRedirectLocation = errors.New("redirect response has no location header")

	errUnexpectedStatus = errors.New("unexpected http status")
)

// archPair holds the two architecture spellings a package reference needs.
type archPair struct {
	// Kernel is the kernel's name for the architecture (uname -m).
	Kernel string
	// Package is the package manager's name for the architecture.
	Package string
}

// resolveArch maps a Go architecture name onto the published package architectures.
func resolveArch(goarch string) (archPair, error) {
	switch goarch {
	case "amd64":
		return archPair{Kernel: "x86_64", Package: "amd64"}, nil
	case "arm64":
		return archPair{Kernel: "aarch64", Package: "arm64"}, nil
	default:
		return archPair{}, fmt.Errorf("%w: %s", ErrUnsupportedArchitecture, goarch)
	}
}

// checkOS rejects every kernel except the one the packages are built for.
func checkOS(goos string) error {
	if goos != supportedOS {
		return fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}

	return nil
}

// Locator resolves and downloads agent packages into the tool cache.
type Locator struct {
	cache        *toolcache.Cache
	redirects    *http.Client
	downloads    *http.Client
	downloadHost string
	releasesHost string
	goos         string
	goarch       string
}

// Option customizes a Locator; used by tests to substitute hosts and platform.
type Option func(*Locator)

// WithDownloadHost overrides the redirect endpoint host.
func WithDownloadHost(host string) Option {
	return func(l *Locator) {
		l.downloadHost = host
	}
}

// WithReleasesHost overrides the versioned releases host.
func WithReleasesHost(host string) Option {
	return func(l *Locator) {
		l.releasesHost = host
	}
}

// WithPlatform overrides the detected OS and architecture.
func WithPlatform(goos, goarch string) Option {
	return func(l *Locator) {
		l.goos = goos
		l.goarch = goarch
	}
}

// New creates a Locator backed by the provided cache.
func New(cache *toolcache.Cache, opts ...Option) *Locator {
	l := &Locator{
		cache: cache,
		redirects: &http.Client{
			// The redirect target is the answer, not a hop to follow.
			CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		downloads:    http.DefaultClient,
		downloadHost: defaultDownloadHost,
		releasesHost: defaultReleasesHost,
		goos:         runtime.GOOS,
		goarch:       runtime.GOARCH,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Locate returns the local path of the installable package for the channel
// and version spec, downloading and caching it when absent.
func (l *Locator) Locate(ctx context.Context, channel release.Channel, versionSpec string) (string, error) {
	if err := checkOS(l.goos); err != nil {
		return "", err
	}

	arch, err := resolveArch(l.goarch)
	if err != nil {
		return "", err
	}

	var (
		downloadURL string
		resolved    string
	)

	if release.IsLatest(versionSpec) {
		downloadURL, resolved, err = l.resolveLatest(ctx, channel, arch)
		if err != nil {
			return "", err
		}
	} else {
		resolved = release.PackageVersion(versionSpec)
		downloadURL = fmt.Sprintf("%s/%s/%s/oz_%s_%s_%s.deb",
			l.releasesHost, channel, release.TagVersion(versionSpec), channel, resolved, arch.Package)
	}

	cacheKey := fmt.Sprintf("%s-%s", channel, resolved)

	cached, ok, err := l.cache.Find(toolName, cacheKey)
	if err != nil {
		return "", err
	}

	if ok {
		logger.InfoKV(ctx, "Package found in tool cache", "key", cacheKey, "path", cached)
		return cached, nil
	}

	logger.InfoKV(ctx, "Downloading package", "url", downloadURL, "version", resolved)

	temp, err := l.download(ctx, downloadURL)
	if err != nil {
		return "", err
	}

	defer func() {
		_ = os.Remove(temp)
	}()

	return l.cache.Register(ctx, toolName, packageFilename, cacheKey, temp)
}

// resolveLatest asks the download endpoint where the newest package lives.
// The redirect target doubles as the download URL; its second path segment
// carries the concrete version. A shorter path keeps "latest" as the
// resolved version for cache-key purposes.
func (l *Locator) resolveLatest(ctx context.Context, channel release.Channel, arch archPair) (string, string, error) {
	endpoint := fmt.Sprintf("%s/download/v2?os=%s&package=%s&arch=%s&channel=%s",
		l.downloadHost, supportedOS, packageFormat, arch.Kernel, channel)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return "", "", err
	}

	resp, err := l.redirects.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("resolve latest version: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusMovedPermanently && resp.StatusCode != http.StatusFound {
		return "", "", fmt.Errorf("%w: got %s", ErrRedirectExpected, resp.Status)
	}

	location := resp.Header.Get("location")
	if location == "" {
		return "", "", ErrMissingRedirectLocation
	}

	target, err := url.Parse(location)
	if err != nil {
		return "", "", fmt.Errorf("parse redirect location: %w", err)
	}

	resolved := release.LatestVersion
	if segments := splitPath(target.Path); len(segments) >= 2 {
		resolved = segments[1]
	}

	return location, resolved, nil
}

// download fetches the URL into a temporary file and returns its path.
func (l *Locator) download(ctx context.Context, downloadURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, http.NoBody)
	if err != nil {
		return "", err
	}

	resp, err := l.downloads.Do(req)
	if err != nil {
		return "", fmt.Errorf("download package: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s, %s: %w", downloadURL, resp.Status, errUnexpectedStatus)
	}

	temp, err := os.CreateTemp("", "warp-agent-*.deb")
	if err != nil {
		return "", fmt.Errorf("create temporary file: %w", err)
	}

	if _, err = io.Copy(temp, resp.Body); err != nil {
		_ = temp.Close()
		_ = os.Remove(temp.Name())

		return "", fmt.Errorf("write package: %w", err)
	}

	if err = temp.Close(); err != nil {
		return "", err
	}

	return temp.Name(), nil
}

// splitPath splits a URL path on "/" and discards empty segments.
func splitPath(p string) []string {
	parts := strings.Split(p, "/")

	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}

	return segments
}
