package units

import (
	"encoding/json"

	. "gopkg.in/check.v1"
	"gopkg.in/yaml.v2"
)

type DirectionSuite struct{}

var _ = Suite(&DirectionSuite{})

func (s *DirectionSuite) TestDefaultIsCW(c *C) {
	var d Direction
	c.Check(d, Equals, CW)
	c.Check(d.String(), Equals, "CW")
}

func (s *DirectionSuite) TestLogicSignals(c *C) {
	c.Check(DirectionFromBool(true), Equals, CW)
	c.Check(DirectionFromBool(false), Equals, CCW)
	c.Check(DirectionFromU8(0), Equals, CCW)
	c.Check(DirectionFromU8(1), Equals, CW)
	c.Check(DirectionFromU8(42), Equals, CW)

	for _, d := range []Direction{CW, CCW} {
		c.Check(DirectionFromBool(d.Bool()), Equals, d)
		c.Check(DirectionFromU8(d.U8()), Equals, d)
		c.Check(d.Reversed().Reversed(), Equals, d)
		c.Check(d.Reversed(), Not(Equals), d)
	}
	c.Check(CW.U8(), Equals, uint8(1))
	c.Check(CCW.U8(), Equals, uint8(0))
}

func (s *DirectionSuite) TestSerialization(c *C) {
	type motor struct {
		Direction Direction `yaml:"direction" json:"direction"`
	}

	data, err := yaml.Marshal(motor{CCW})
	c.Assert(err, IsNil)
	c.Check(string(data), Equals, "direction: CCW\n")

	res := motor{}
	c.Check(yaml.Unmarshal([]byte("direction: ccw\n"), &res), IsNil)
	c.Check(res.Direction, Equals, CCW)
	c.Check(yaml.Unmarshal([]byte("direction: up\n"), &res), ErrorMatches, "invalid direction 'up'")

	data, err = json.Marshal(motor{CW})
	c.Assert(err, IsNil)
	c.Check(string(data), Equals, `{"direction":"CW"}`)
	c.Check(json.Unmarshal([]byte(`{"direction":"CCW"}`), &res), IsNil)
	c.Check(res.Direction, Equals, CCW)
	c.Check(json.Unmarshal([]byte(`{"direction":1}`), &res), NotNil)
}
