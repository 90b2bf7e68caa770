// Package buildpath normalizes paths between the invocation working
// directory and the build output directory, so a generated build
// description stays portable across in-source and out-of-source layouts.
package buildpath

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ArtifactPath is a path as it appears in the generated build description:
// relative to the build root, or absolute when the source shares no common
// ancestor with the build root beyond the filesystem root.
type ArtifactPath string

// IsAbs reports whether the artifact path is absolute.
func (p ArtifactPath) IsAbs() bool {
	return filepath.IsAbs(string(p))
}

// String returns the path as a plain string.
func (p ArtifactPath) String() string {
	return string(p)
}

// Resolver relativizes paths against a single absolute build root.
type Resolver struct {
	buildDir string
}

// NewResolver creates a resolver for the given build directory. The
// directory does not need to exist yet; it is only normalized to an
// absolute path.
func NewResolver(buildDir string) (*Resolver, error) {
	abs, err := filepath.Abs(buildDir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve build dir %s: %w", buildDir, err)
	}
	return &Resolver{buildDir: abs}, nil
}

// BuildDir returns the absolute build root.
func (r *Resolver) BuildDir() string {
	return r.buildDir
}

// RelBuild expresses path relative to the build root.
//
// When the only common ancestor of the two paths is the filesystem root, a
// relative path would have to climb above it, which ninja rejects and which
// is no shorter than the absolute form, so the absolute path is returned
// verbatim. A path equal to the build root yields the empty string, which
// callers must read as the current directory, not as a missing value.
func (r *Resolver) RelBuild(path string) (ArtifactPath, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("cannot resolve input path %s: %w", path, err)
	}
	if commonPrefix(abs, r.buildDir) == string(filepath.Separator) {
		return ArtifactPath(abs), nil
	}
	rel, err := filepath.Rel(r.buildDir, abs)
	if err != nil {
		return "", fmt.Errorf("cannot relativize %s against %s: %w", abs, r.buildDir, err)
	}
	if rel == "." {
		return ArtifactPath(""), nil
	}
	return ArtifactPath(rel), nil
}

// Resolve is the inverse of RelBuild: it joins a build-root-relative
// artifact path back to an absolute one. Absolute artifact paths pass
// through unchanged.
func (r *Resolver) Resolve(path ArtifactPath) string {
	if path.IsAbs() {
		return filepath.Clean(string(path))
	}
	return filepath.Join(r.buildDir, string(path))
}

// commonPrefix returns the longest common path prefix of two cleaned
// absolute paths, component-wise. Two paths with no shared ancestor reduce
// to the filesystem root.
func commonPrefix(a, b string) string {
	sep := string(filepath.Separator)
	as := strings.Split(filepath.Clean(a), sep)
	bs := strings.Split(filepath.Clean(b), sep)

	n := 0
	for n < len(as) && n < len(bs) && as[n] == bs[n] {
		n++
	}
	prefix := strings.Join(as[:n], sep)
	if prefix == "" {
		prefix = sep
	}
	return prefix
}
