// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents

import (
	"fmt"

	semver "github.com/hashicorp/go-version"
)

// Version is the major.minor pair of a %YAML directive.
type Version struct {
	major int
	minor int
}

var (
	Version11 = Version{1, 1}
	Version12 = Version{1, 2}
)

func NewVersion(major, minor int) (Version, error) {
	if major < 0 || minor < 0 {
		return Version{}, fmt.Errorf("invalid YAML version %d.%d: components must not be negative", major, minor)
	}
	return Version{major: major, minor: minor}, nil
}

// ParseVersion reads a "major.minor" string such as "1.2".
func ParseVersion(s string) (Version, error) {
	parsed, err := semver.NewVersion(s)
	if err != nil {
		return Version{}, fmt.Errorf("parsing YAML version %q: %w", s, err)
	}
	if parsed.Prerelease() != "" || parsed.Metadata() != "" {
		return Version{}, fmt.Errorf("parsing YAML version %q: expected major.minor", s)
	}
	segments := parsed.Segments()
	if len(segments) > 2 && segments[2] != 0 {
		return Version{}, fmt.Errorf("parsing YAML version %q: expected major.minor", s)
	}
	return NewVersion(segments[0], segments[1])
}

func (v Version) Major() int { return v.major }
func (v Version) Minor() int { return v.minor }

func (v Version) String() string { return fmt.Sprintf("%d.%d", v.major, v.minor) }

// Compare returns -1, 0 or 1 as v is older, equal or newer than other.
func (v Version) Compare(other Version) int {
	return v.semver().Compare(other.semver())
}

func (v Version) semver() *semver.Version {
	return semver.Must(semver.NewVersion(v.String()))
}
