package toolcache

import (
	"bytes"
	"context"
	"crypto"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	goupdate "github.com/doitdistributed/go-update"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/warp-agent-action/internal/logger"

	// Ensure SHA512 is available for checksum calculation.
	_ "crypto/sha512"
)

const (
	// manifestFilename describes a cache entry next to its package file.
	manifestFilename = "manifest.yaml"

	// defaultFileMode is applied to cached package files.
	defaultFileMode os.FileMode = 0o644

	// defaultDirMode is applied to cache entry directories.
	defaultDirMode os.FileMode = 0o755

	// checksumFunction is used to verify cached package files.
	checksumFunction crypto.Hash = crypto.SHA512
)

var errHashUnavailable = errors.New("hash function unavailable")

// Manifest records what a cache entry holds.
type Manifest struct {
	// Filename is the package file stored next to the manifest.
	Filename string `yaml:"filename"`
	// Key is the cache key the entry was registered under.
	Key string `yaml:"key"`
	// Checksum is the base64-encoded SHA-512 of the package file.
	Checksum string `yaml:"checksum"`
	// RegisteredAt is when the entry was written.
	RegisteredAt time.Time `yaml:"registered_at"`
}

// Cache is a file-backed store of installable packages.
type Cache struct {
	// root is the base directory holding <tool>/<key>/ entries.
	root string
}

// New creates a cache rooted at the provided directory.
func New(root string) *Cache {
	return &Cache{root: filepath.Clean(root)}
}

// DefaultRoot returns the CI runner's tool cache when available,
// otherwise a directory under the user cache dir.
func DefaultRoot() string {
	if dir := os.Getenv("RUNNER_TOOL_CACHE"); dir != "" {
		return dir
	}

	base, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "warp-agent-action")
	}

	return filepath.Join(base, "warp-agent-action")
}

// entryDir returns the directory holding a single cache entry.
func (c *Cache) entryDir(tool, key string) string {
	return filepath.Join(c.root, tool, key)
}

// Find looks up a cached package by tool name and key. A manifest that fails
// to parse, a missing package file, or a checksum mismatch all degrade to a
// miss so callers re-download instead of installing a corrupt package.
func (c *Cache) Find(tool, key string) (string, bool, error) {
	dir := c.entryDir(tool, key)

	contents, err := os.ReadFile(filepath.Join(dir, manifestFilename))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}

		return "", false, fmt.Errorf("read cache manifest: %w", err)
	}

	var manifest Manifest
	if err = yaml.Unmarshal(contents, &manifest); err != nil {
		return "", false, nil
	}

	packagePath := filepath.Join(dir, manifest.Filename)

	expected, err := base64.StdEncoding.DecodeString(manifest.Checksum)
	if err != nil {
		return "", false, nil
	}

	actual, err := fileChecksum(packagePath)
	if err != nil {
		return "", false, nil
	}

	if !bytes.Equal(expected, actual) {
		return "", false, nil
	}

	return packagePath, true, nil
}

// Register moves the file at src into the cache under the given tool, key
// and filename, verifying the checksum during placement. It returns the
// final cached path.
func (c *Cache) Register(ctx context.Context, tool, filename, key, src string) (string, error) {
	dir := c.entryDir(tool, key)
	if err := os.MkdirAll(dir, defaultDirMode); err != nil {
		return "", fmt.Errorf("create cache entry: %w", err)
	}

	data, err := os.ReadFile(filepath.Clean(src))
	if err != nil {
		return "", fmt.Errorf("read downloaded package: %w", err)
	}

	checksum, err := dataChecksum(data)
	if err != nil {
		return "", err
	}

	target := filepath.Join(dir, filename)

	// go-update refuses to apply onto a missing target, so seed an empty file.
	if _, err = os.Stat(target); err != nil && errors.Is(err, os.ErrNotExist) {
		if _, err = os.Create(target); err != nil {
			return "", fmt.Errorf("create cache target: %w", err)
		}
	}

	options := goupdate.Options{
		TargetPath: target,
		TargetMode: defaultFileMode,
		Checksum:   checksum,
		Hash:       checksumFunction,
	}
	if err = goupdate.Apply(bytes.NewReader(data), options); err != nil {
		return "", fmt.Errorf("place package in cache: %w", err)
	}

	// Apply keeps the replaced file around; the empty seed is of no use.
	if _, err = os.Stat(target + ".old"); err == nil {
		_ = os.Remove(target + ".old")
	}

	manifest := Manifest{
		Filename:     filename,
		Key:          key,
		Checksum:     base64.StdEncoding.EncodeToString(checksum),
		RegisteredAt: time.Now().UTC(),
	}

	encoded, err := yaml.Marshal(&manifest)
	if err != nil {
		return "", fmt.Errorf("encode cache manifest: %w", err)
	}

	if err = os.WriteFile(filepath.Join(dir, manifestFilename), encoded, defaultFileMode); err != nil {
		return "", fmt.Errorf("write cache manifest: %w", err)
	}

	logger.InfoKV(ctx, "Registered package in tool cache", "tool", tool, "key", key, "path", target)

	return target, nil
}

// fileChecksum returns checksum bytes for a file using checksumFunction.
func fileChecksum(path string) ([]byte, error) {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	return dataChecksum(contents)
}

// dataChecksum returns checksum bytes for in-memory contents.
func dataChecksum(contents []byte) ([]byte, error) {
	if !checksumFunction.Available() {
		return nil, fmt.Errorf("checksum calculation not possible: %w", errHashUnavailable)
	}

	hasher := checksumFunction.New()
	if _, err := hasher.Write(contents); err != nil {
		return nil, fmt.Errorf("calculate checksum: %w", err)
	}

	return hasher.Sum(nil), nil
}
