package window

import (
	"errors"
	"fmt"
)

var (
	errEmptyCoeffs      = errors.New("window: empty coefficient slice")
	errZeroCoherentGain = errors.New("window: coherent gain is zero")
	errMismatchedLength = errors.New("window: sample and coefficient lengths differ")
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window: size %d, want at least 1", size)
	}

	return nil
}

func validateKaiser(size int, beta float64) error {
	if err := validateLength(size); err != nil {
		return err
	}

	if beta < 0 {
		return fmt.Errorf("window: kaiser beta %g, want >= 0", beta)
	}

	return nil
}

func validateTukey(size int, alpha float64) error {
	if err := validateLength(size); err != nil {
		return err
	}

	if alpha < 0 || alpha > 1 {
		return fmt.Errorf("window: tukey alpha %g, want within [0, 1]", alpha)
	}

	return nil
}

func validateGauss(size int, sigma float64) error {
	if err := validateLength(size); err != nil {
		return err
	}

	if sigma <= 0 {
		return fmt.Errorf("window: gauss sigma %g, want > 0", sigma)
	}

	return nil
}

func validateGeneralGauss(size int, p, sigma float64) error {
	if p <= 0 {
		return fmt.Errorf("window: general gauss power %g, want > 0", p)
	}

	return validateGauss(size, sigma)
}

func validateGeneralHamming(size int, alpha float64) error {
	if err := validateLength(size); err != nil {
		return err
	}

	if alpha < 0 || alpha > 1 {
		return fmt.Errorf("window: general hamming alpha %g, want within [0, 1]", alpha)
	}

	return nil
}
