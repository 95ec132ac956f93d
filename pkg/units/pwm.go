package units

import "fmt"

//go:generate mockgen -source=pwm.go -destination=pwm_mock_test.go -package=units

// PWM is a pulse width modulated output driven with an integer duty.
type PWM interface {
	MaxDuty() uint16
	SetDuty(duty uint16) error
}

// ApplyDuty sets the duty of pwm to f scaled against its maximum.
func ApplyDuty(pwm PWM, f Factor) error {
	duty := f.DutyFor(pwm.MaxDuty())
	if err := pwm.SetDuty(duty); err != nil {
		return fmt.Errorf("could not set duty to %d: %w", duty, err)
	}
	return nil
}
