package profile

import (
	"fmt"

	"github.com/blang/semver"
)

const versionDevelopment = "development"

// SYUNIT_VERSION is set at link time by the release build.
var SYUNIT_VERSION = versionDevelopment

// parseRelease returns the release line of a version: its major, plus
// its minor while the major is still 0. Development builds have none.
func parseRelease(version string) (*semver.Version, error) {
	if version == versionDevelopment {
		return nil, nil
	}
	v, err := semver.ParseTolerant(version)
	if err != nil {
		return nil, fmt.Errorf("invalid version '%s': %w", version, err)
	}
	line := semver.Version{Major: v.Major}
	if v.Major == 0 {
		line.Minor = v.Minor
	}
	return &line, nil
}

// CompatibleVersions reports whether a profile written for version
// file can be used by a syunit of version tool.
func CompatibleVersions(tool, file string) (bool, error) {
	toolLine, err := parseRelease(tool)
	if err != nil {
		return false, err
	}
	fileLine, err := parseRelease(file)
	if err != nil {
		return false, err
	}
	if toolLine == nil || fileLine == nil {
		return true, nil
	}
	return toolLine.Equals(*fileLine), nil
}
