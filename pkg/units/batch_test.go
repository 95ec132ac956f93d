package units

import (
	"errors"

	. "gopkg.in/check.v1"
)

type BatchSuite struct{}

var _ = Suite(&BatchSuite{})

func (s *BatchSuite) TestUnits(c *C) {
	sum, err := AddUnits([]Millimeters{1, 2, 3}, []Millimeters{0.5, -2, 10})
	c.Check(err, IsNil)
	c.Check(sum, DeepEquals, []Millimeters{1.5, 0, 13})

	diff, err := SubUnits([]Seconds{1, 2}, []Seconds{1, 0.5})
	c.Check(err, IsNil)
	c.Check(diff, DeepEquals, []Seconds{0, 1.5})

	empty, err := AddUnits[Newtons](nil, nil)
	c.Check(err, IsNil)
	c.Check(empty, HasLen, 0)

	_, err = AddUnits([]Millimeters{1, 2}, []Millimeters{1})
	c.Check(errors.Is(err, ErrLengthMismatch), Equals, true)
	c.Check(err, ErrorMatches, "length mismatch: 2 and 1")
	_, err = SubUnits([]Millimeters{}, []Millimeters{1})
	c.Check(errors.Is(err, ErrLengthMismatch), Equals, true)
}

func (s *BatchSuite) TestPositions(c *C) {
	start := PositionsFromOffsets([]Millimeters{0, 10, -5})
	moved, err := OffsetPositions(start, []Millimeters{1, -10, 5})
	c.Check(err, IsNil)
	c.Check(EqualPositions(moved, PositionsFromOffsets([]Millimeters{1, 0, 0})), Equals, true)

	travel, err := DiffPositions(start, moved)
	c.Check(err, IsNil)
	c.Check(EqualUnits(travel, []Millimeters{1, -10, 5}), Equals, true)

	c.Check(OffsetsFromPositions(moved), DeepEquals, []Millimeters{1, 0, 0})

	_, err = OffsetPositions(start, []Millimeters{1})
	c.Check(errors.Is(err, ErrLengthMismatch), Equals, true)
	_, err = DiffPositions(start, start[:2])
	c.Check(errors.Is(err, ErrLengthMismatch), Equals, true)
}

func (s *BatchSuite) TestEquality(c *C) {
	c.Check(EqualUnits([]Radians{1, 2}, []Radians{1, 2}), Equals, true)
	c.Check(EqualUnits([]Radians{1, 2}, []Radians{1, 3}), Equals, false)
	c.Check(EqualUnits([]Radians{1, 2}, []Radians{1}), Equals, false)
	c.Check(EqualUnits([]Radians{NaN[Radians]()}, []Radians{NaN[Radians]()}), Equals, false)
	c.Check(EqualUnits[Radians](nil, []Radians{}), Equals, true)

	a := []PositionRad{At(Radians(1))}
	c.Check(EqualPositions(a, []PositionRad{At(Radians(1))}), Equals, true)
	c.Check(EqualPositions(a, []PositionRad{At(Radians(2))}), Equals, false)
	c.Check(EqualPositions(a, nil), Equals, false)
}
