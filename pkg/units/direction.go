package units

import (
	"encoding/json"
	"fmt"
)

// Direction is the orientation of a movement. The zero value is CW.
type Direction struct {
	ccw bool
}

var (
	// CW is clockwise, `true` or `1` as a logic signal.
	CW = Direction{ccw: false}
	// CCW is counter-clockwise, `false` or `0` as a logic signal.
	CCW = Direction{ccw: true}
)

func DirectionFromBool(b bool) Direction {
	return Direction{ccw: !b}
}

// DirectionFromU8 maps 0 to CCW and any other value to CW.
func DirectionFromU8(v uint8) Direction {
	return Direction{ccw: v == 0}
}

func (d Direction) Bool() bool {
	return !d.ccw
}

func (d Direction) U8() uint8 {
	if d.ccw {
		return 0
	}
	return 1
}

func (d Direction) Reversed() Direction {
	return Direction{ccw: !d.ccw}
}

func (d Direction) String() string {
	if d.ccw {
		return "CCW"
	}
	return "CW"
}

func parseDirection(s string) (Direction, error) {
	switch s {
	case "CW", "cw":
		return CW, nil
	case "CCW", "ccw":
		return CCW, nil
	}
	return Direction{}, fmt.Errorf("invalid direction '%s'", s)
}

func (d Direction) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

func (d *Direction) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	res, err := parseDirection(s)
	if err != nil {
		return err
	}
	*d = res
	return nil
}

func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Direction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	res, err := parseDirection(s)
	if err != nil {
		return err
	}
	*d = res
	return nil
}
