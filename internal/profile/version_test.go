package profile

import (
	"github.com/blang/semver"
	. "gopkg.in/check.v1"
)

type VersionSuite struct {
}

var _ = Suite(&VersionSuite{})

func (s *VersionSuite) TestReleaseLine(c *C) {
	testdata := []struct {
		Input    string
		Expected semver.Version
	}{
		{"v0.1.0", semver.Version{Minor: 1}},
		{"0.3.7-3-gdeadbee", semver.Version{Minor: 3}},
		{"v2.4.1", semver.Version{Major: 2}},
		{"2.0.0-rc1", semver.Version{Major: 2}},
	}

	for _, d := range testdata {
		line, err := parseRelease(d.Input)
		c.Assert(err, IsNil)
		c.Assert(line, NotNil)
		c.Check(line.Equals(d.Expected), Equals, true, Commentf("input: %s, line: %s", d.Input, line))
	}

	line, err := parseRelease("development")
	c.Check(line, IsNil)
	c.Check(err, IsNil)
}

func (s *VersionSuite) TestCompatibility(c *C) {
	testdata := []struct {
		Tool, File string
		Error      string
		Compatible bool
	}{
		{"development", "v3.1.2", "", true},
		{"v0.1.0", "development", "", true},
		{"v0.1.0", "v0.2.0-12-g32456785", "", false},
		{"v0.1.4", "v0.1.0-12-g32456785", "", true},
		{"v1.0.0-3-gaeb345bd", "v1.4.0", "", true},
		{"v1.0.0", "v2.0.0", "", false},
		{"v0.1.0", "v1.1.0", "", false},
		{"v1.2-3", "v1.4.0", `invalid version 'v1.2-3':.*`, false},
		{"development", "v1.4-0", `invalid version 'v1.4-0':.*`, false},
	}

	for _, d := range testdata {
		comment := Commentf("tool: %s, file: %s", d.Tool, d.File)
		r, err := CompatibleVersions(d.Tool, d.File)
		if len(d.Error) == 0 {
			c.Check(err, IsNil, comment)
			c.Check(r, Equals, d.Compatible, comment)
		} else {
			c.Check(r, Equals, false, comment)
			c.Check(err, ErrorMatches, d.Error, comment)
		}
	}
}
