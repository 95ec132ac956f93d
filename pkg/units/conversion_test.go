package units

import (
	"math"

	. "gopkg.in/check.v1"
)

type ConversionSuite struct{}

var _ = Suite(&ConversionSuite{})

func (s *ConversionSuite) TestImperial(c *C) {
	c.Check(InchesToMillimeters.To(Inches(1)), Equals, Millimeters(25.4))
	c.Check(InchesToMillimeters.From(Millimeters(25.4)), Equals, Inches(1))
	c.Check(InchesToMillimeters.Inverse().To(Millimeters(50.8)), CloseTo, 2.0, 1e-6)
	c.Check(InchesToMillimeters.Factor(), Equals, float32(25.4))
}

func (s *ConversionSuite) TestAngles(c *C) {
	c.Check(DegreesToRadians.To(Degrees(180)), CloseTo, math.Pi, 1e-6)
	c.Check(DegreesToRadians.From(Radians(math.Pi/2)), CloseTo, 90.0, 1e-6)
}

func (s *ConversionSuite) TestRoundTrip(c *C) {
	values := []float32{0, 1, -1, 0.001, 3.75, -250.5, 1e6}
	conversions := []Conversion[Inches, Millimeters]{
		InchesToMillimeters,
		NewConversion[Inches, Millimeters](3),
		NewConversion[Inches, Millimeters](0.125),
	}
	for _, conv := range conversions {
		for _, v := range values {
			comment := Commentf("k: %v, v: %v", conv.Factor(), v)
			a := Inches(v)
			c.Check(conv.From(conv.To(a)), CloseTo, float64(a), 1e-6, comment)
			b := Millimeters(v)
			c.Check(conv.To(conv.From(conv.To(conv.From(b)))), CloseTo, float64(b), 1e-6, comment)
		}
	}
}

func (s *ConversionSuite) TestInertiaReduction(c *C) {
	// 2kg at 100mm of the axis is 0.02 kgm^2
	reduced := KilogramsAtRadius.Reduce(Kilograms(2), Millimeters(100))
	c.Check(reduced, CloseTo, 0.02, 1e-6)
	c.Check(KilogramsAtRadius.Extend(reduced, Millimeters(100)), CloseTo, 2.0, 1e-6)

	plain := NewInertiaReduction[Kilograms, Millimeters, KgMeter2](1)
	c.Check(plain.Reduce(Kilograms(3), Millimeters(2)), Equals, KgMeter2(12))
	c.Check(plain.Extend(KgMeter2(12), Millimeters(2)), Equals, Kilograms(3))

	for _, ratio := range []Millimeters{0.5, 3, 42, 1000} {
		i := Kilograms(1.25)
		c.Check(KilogramsAtRadius.Extend(KilogramsAtRadius.Reduce(i, ratio), ratio), CloseTo, float64(i), 1e-5)
	}
}
