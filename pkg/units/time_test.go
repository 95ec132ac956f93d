package units

import (
	"math"
	"time"

	. "gopkg.in/check.v1"
)

type TimeSuite struct{}

var _ = Suite(&TimeSuite{})

func (s *TimeSuite) TestDurations(c *C) {
	c.Check(Seconds(1.5).Duration(), Equals, 1500*time.Millisecond)
	c.Check(Seconds(0.25).Duration(), Equals, 250*time.Millisecond)
	c.Check(Seconds(-2).Duration(), Equals, -2*time.Second)
	c.Check(Seconds(0).Duration(), Equals, time.Duration(0))

	c.Check(SecondsOf(1500*time.Millisecond), Equals, Seconds(1.5))
	c.Check(SecondsOf(time.Minute), Equals, Seconds(60))
	c.Check(SecondsOf(time.Microsecond), CloseTo, 1e-6, 1e-6)
	c.Check(SecondsOf(Seconds(42.5).Duration()), Equals, Seconds(42.5))
}

func (s *TimeSuite) TestDurationSaturates(c *C) {
	testdata := []struct {
		Value    Seconds
		Expected time.Duration
	}{
		{Infinity[Seconds](), time.Duration(math.MaxInt64)},
		{NegInfinity[Seconds](), time.Duration(math.MinInt64)},
		{Seconds(1e30), time.Duration(math.MaxInt64)},
		{Seconds(-1e30), time.Duration(math.MinInt64)},
		{Seconds(1e10), time.Duration(math.MaxInt64)},
		{NaN[Seconds](), 0},
	}
	for _, d := range testdata {
		c.Check(d.Value.Duration(), Equals, d.Expected, Commentf("value: %s", d.Value))
	}
	c.Check(Seconds(1<<33).Duration(), Equals, (1<<33)*time.Second)
}
