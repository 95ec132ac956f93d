// Package profile reads and writes machine profiles: the kinematic
// limits of an axis expressed in one of the unit sets.
package profile

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/formicidae-tracker/syunit/pkg/motion"
	"github.com/formicidae-tracker/syunit/pkg/units"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// System names the unit set a profile is expressed in.
type System string

const (
	MetricMM System = "metric-mm"
	Rotary   System = "rotary"
)

// Symbol returns the distance symbol of the unit set, or an empty
// string for an unknown system.
func (s System) Symbol() string {
	switch s {
	case MetricMM:
		return units.MetricMM{}.Name()
	case Rotary:
		return units.Rotary{}.Name()
	}
	return ""
}

// Profile describes a single axis. Velocity, acceleration and inertia
// are expressed in the units of System.
type Profile struct {
	Version         string            `yaml:"version"`
	System          System            `yaml:"system"`
	MaxVelocity     float32           `yaml:"max-velocity"`
	MaxAcceleration float32           `yaml:"max-acceleration"`
	Inertia         float32           `yaml:"inertia"`
	Radius          units.Millimeters `yaml:"radius,omitempty"`
	SpeedLimit      *units.Factor     `yaml:"speed-limit,omitempty"`
	Direction       units.Direction   `yaml:"direction"`
}

// DefaultPath returns the location of the user profile.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "syunit", "profile.yaml")
}

// Limit returns the speed limit of the profile, FactorMax if unset.
func (p *Profile) Limit() units.Factor {
	if p.SpeedLimit == nil {
		return units.FactorMax
	}
	return *p.SpeedLimit
}

// Validate checks the profile version against SYUNIT_VERSION and that
// System is known.
func (p *Profile) Validate() error {
	var errs []error
	if len(p.Version) == 0 {
		errs = append(errs, errors.New("missing version"))
	} else {
		compatible, err := CompatibleVersions(SYUNIT_VERSION, p.Version)
		if err != nil {
			errs = append(errs, err)
		} else if compatible == false {
			errs = append(errs, fmt.Errorf("version %s is not compatible with syunit %s", p.Version, SYUNIT_VERSION))
		}
	}
	if len(p.System.Symbol()) == 0 {
		errs = append(errs, fmt.Errorf("unknown system '%s'", p.System))
	}
	return errors.Join(errs...)
}

// NewAxis builds the speed limited axis described by p in the unit set
// set. It fails if p describes another system.
func NewAxis[
	T units.Unit,
	D units.Derivable[T, V],
	V units.Rate[T, D, A],
	A units.Accelerating[T, V, J, I, F],
	J units.Integrable[T, A],
	F units.ForceOf[I, A],
	I units.InertiaOf[A, F],
](p *Profile, set units.UnitSet[T, D, V, A, J, F, I]) (motion.Axis[T, D, V, A, J, F, I], error) {
	if p.System.Symbol() != set.Name() {
		return motion.Axis[T, D, V, A, J, F, I]{}, fmt.Errorf("profile describes a %s axis, not a %s one", p.System, set.Name())
	}
	axis, err := motion.NewAxis(set, V(p.MaxVelocity), A(p.MaxAcceleration), I(p.Inertia))
	if err != nil {
		return axis, err
	}
	return axis.SpeedLimited(p.Limit()), nil
}

type deprecatedLine struct {
	name, comment string
	isError       bool
}

func checkDeprecatedLines(data []byte) ([]deprecatedLine, error) {
	parsed := yaml.MapSlice{}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, err
	}
	var res []deprecatedLine = nil

	for _, item := range parsed {
		key, ok := item.Key.(string)
		if ok == false {
			continue
		}
		switch key {
		case "max-vel":
			res = append(res, deprecatedLine{name: key, comment: "renamed max-velocity", isError: true})
		case "max-acc":
			res = append(res, deprecatedLine{name: key, comment: "renamed max-acceleration", isError: true})
		case "units":
			res = append(res, deprecatedLine{name: key, comment: "value ignored, use system", isError: false})
		case "imperial":
			res = append(res, deprecatedLine{
				name:    key,
				comment: "value ignored, imperial values are converted with `syunit convert`",
				isError: false,
			})
		}
	}

	return res, nil
}

func formatDeprecatedLines(lines []deprecatedLine, writer io.Writer) error {
	var errs []error
	for _, l := range lines {
		if l.isError == true {
			errs = append(errs, fmt.Errorf("%s is deprecated: %s", l.name, l.comment))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid profile: %w", errors.Join(errs...))
	}

	if writer == nil {
		return nil
	}

	log := logrus.New()
	log.SetOutput(writer)

	for _, l := range lines {
		log.WithFields(logrus.Fields{
			"field":   l.name,
			"comment": l.comment,
		}).Warn("deprecated field")
	}

	return nil
}

// Parse reads a profile. Deprecated fields are reported as warnings on
// writer, or rejected when they can no longer be honored.
func Parse(content []byte, writer io.Writer) (*Profile, error) {
	lines, err := checkDeprecatedLines(content)
	if err != nil {
		return nil, err
	}
	if err := formatDeprecatedLines(lines, writer); err != nil {
		return nil, err
	}

	p := &Profile{}
	if err := yaml.Unmarshal(content, p); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return p, nil
}

func Read(filename string, writer io.Writer) (*Profile, error) {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	p, err := Parse(data, writer)
	if err != nil {
		return nil, fmt.Errorf("could not read '%s': %w", filename, err)
	}
	return p, nil
}

// WriteFile saves the profile to filename, never overwriting an
// existing file. It returns the name of the written file.
func (p Profile) WriteFile(filename string) (string, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return "", err
	}
	f, name, err := CreateFileWithoutOverwrite(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := f.Write(data); err != nil {
		return name, err
	}
	return name, nil
}
