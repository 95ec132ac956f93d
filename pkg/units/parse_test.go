package units

import (
	"errors"
	"math"

	. "gopkg.in/check.v1"
)

type ParseSuite struct{}

var _ = Suite(&ParseSuite{})

func (s *ParseSuite) TestAcceptedForms(c *C) {
	testdata := []struct {
		Text  string
		Value Millimeters
	}{
		{"5", 5},
		{"5mm", 5},
		{" 5 mm ", 5},
		{"-1.25mm", -1.25},
		{"1e3", 1000},
		{"+0.5mm", 0.5},
	}
	for _, d := range testdata {
		v, err := Parse[Millimeters](d.Text)
		if c.Check(err, IsNil, Commentf("text: %q", d.Text)) == false {
			continue
		}
		c.Check(v, Equals, d.Value, Commentf("text: %q", d.Text))
	}
}

func (s *ParseSuite) TestDisplayRoundTrip(c *C) {
	for _, v := range []MMPerSecond2{0, -1.5, 1234.5, 1e-3} {
		res, err := Parse[MMPerSecond2](v.String())
		c.Check(err, IsNil)
		c.Check(res, Equals, v)
	}
	inf, err := Parse[Newtons](Infinity[Newtons]().String())
	c.Check(err, IsNil)
	c.Check(math.IsInf(float64(inf), 1), Equals, true)

	nan, err := Parse[Newtons]("NaN")
	c.Check(err, IsNil)
	c.Check(IsNaN(nan), Equals, true)
}

func (s *ParseSuite) TestErrors(c *C) {
	_, err := Parse[Millimeters]("5rad")
	c.Check(errors.Is(err, ErrSyntax), Equals, true)
	c.Check(err, ErrorMatches, `could not parse "5rad" as Millimeters: not a valid number`)

	_, err = Parse[Seconds]("")
	c.Check(errors.Is(err, ErrSyntax), Equals, true)

	_, err = Parse[Radians]("1e50rad")
	c.Check(errors.Is(err, ErrOutOfRange), Equals, true)
	c.Check(err, ErrorMatches, `could not parse "1e50rad" as Radians: value out of range`)

	c.Check(MustParse[Seconds]("2.5s"), Equals, Seconds(2.5))
	c.Check(func() { MustParse[Seconds]("soon") }, PanicMatches, `could not parse "soon" as Seconds: .*`)
}
