package units

import (
	"encoding/json"

	. "gopkg.in/check.v1"
	"gopkg.in/yaml.v2"
)

type PositionSuite struct{}

var _ = Suite(&PositionSuite{})

func (s *PositionSuite) TestPositionsSubtractToDistances(c *C) {
	var d Millimeters = At(Millimeters(10)).Sub(At(Millimeters(4)))
	c.Check(d, Equals, Millimeters(6))
	c.Check(Diff(At(Millimeters(4)), At(Millimeters(10))), Equals, Millimeters(6))
	c.Check(At(Radians(1)).Sub(At(Radians(3))), Equals, Radians(-2))
}

func (s *PositionSuite) TestDistancesMovePositions(c *C) {
	p := At(Millimeters(2))
	c.Check(p.Add(Millimeters(1)), Equals, At(Millimeters(3)))
	c.Check(p.Minus(Millimeters(1)), Equals, At(Millimeters(1)))

	p.AddAssign(Millimeters(2.5))
	c.Check(p, Equals, At(Millimeters(4.5)))
	p.SubAssign(Millimeters(0.5))
	c.Check(p, Equals, At(Millimeters(4)))
	c.Check(p.Offset(), Equals, Millimeters(4))
	c.Check(p.Float32(), Equals, float32(4))
}

func (s *PositionSuite) TestRoundTripThroughDistance(c *C) {
	positions := []PositionMM{At(Millimeters(0)), At(Millimeters(-12.5)), At(Millimeters(300.25)), At(Millimeters(1e4))}
	for _, p1 := range positions {
		for _, p2 := range positions {
			c.Check(p2.Add(p1.Sub(p2)).Offset(), CloseTo, float64(p1.Offset()), 1e-6)
		}
	}
}

func (s *PositionSuite) TestScalarCapabilities(c *C) {
	p := At(Radians(-2))
	c.Check(p.Neg(), Equals, At(Radians(2)))
	c.Check(p.Abs(), Equals, At(Radians(2)))
	c.Check(p.Scale(1.5), Equals, At(Radians(-3)))
	c.Check(p.ScaleBy(FactorHalf), Equals, At(Radians(-1)))
	c.Check(p.IsFinite(), Equals, true)
	c.Check(p.IsNaN(), Equals, false)
	c.Check(At(NaN[Radians]()).IsNaN(), Equals, true)
	c.Check(p.Less(At(Radians(0))), Equals, true)
	c.Check(p.Min(At(Radians(0))), Equals, p)
	c.Check(p.Max(At(Radians(0))), Equals, At(Radians(0)))

	var origin PositionRad
	c.Check(origin.Offset(), Equals, Radians(0))
}

func (s *PositionSuite) TestParse(c *C) {
	p, err := ParsePosition[Millimeters]("12.5mm")
	c.Check(err, IsNil)
	c.Check(p, Equals, At(Millimeters(12.5)))

	_, err = ParsePosition[Millimeters]("twelve")
	c.Check(err, ErrorMatches, `could not parse "twelve" as Millimeters: not a valid number`)
}

func (s *PositionSuite) TestSerialization(c *C) {
	type axis struct {
		Home PositionMM `yaml:"home" json:"home"`
		Park PositionMM `yaml:"park" json:"park"`
	}
	a := axis{Home: At(Millimeters(-3)), Park: At(Millimeters(120.5))}

	data, err := yaml.Marshal(a)
	c.Assert(err, IsNil)
	c.Check(string(data), Equals, "home: -3\npark: 120.5\n")
	res := axis{}
	c.Check(yaml.Unmarshal(data, &res), IsNil)
	c.Check(res, DeepEquals, a)

	data, err = json.Marshal(a)
	c.Assert(err, IsNil)
	c.Check(string(data), Equals, `{"home":-3,"park":120.5}`)
	res = axis{}
	c.Check(json.Unmarshal(data, &res), IsNil)
	c.Check(res, DeepEquals, a)

	c.Check(json.Unmarshal([]byte(`{"home":"far"}`), &res), ErrorMatches, "invalid position: .*")
}
