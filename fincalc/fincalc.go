// Package fincalc implements the closed-form financial calculators behind the
// site's EMI, returns and SIP tools. Every function is pure: numeric inputs
// in, a numeric result or ErrIndeterminate out, no state between calls.
package fincalc

import (
	"errors"
	"math"
)

// ErrIndeterminate is returned when a calculation has no valid numeric answer
// for the given inputs (zero principal, zero initial value, negative base
// under a fractional exponent, overflow). It is a normal outcome, not a
// failure; callers render a placeholder instead of a number.
var ErrIndeterminate = errors.New("fincalc: indeterminate result")

// EMIResult holds the amortization figures for a loan. TotalPayment and
// TotalInterest are derived from the same monthly payment, so all three are
// defined exactly when the monthly payment is.
type EMIResult struct {
	MonthlyPayment float64
	TotalPayment   float64
	TotalInterest  float64
}

// EMI computes the equated monthly installment for a loan of principal,
// annualRatePercent (e.g. 8.5 for 8.5%) over tenureYears.
func EMI(principal, annualRatePercent, tenureYears float64) (EMIResult, error) {
	monthlyRate := annualRatePercent / 12 / 100
	n := tenureYears * 12

	if principal <= 0 || n <= 0 {
		return EMIResult{}, ErrIndeterminate
	}

	var payment float64
	if monthlyRate == 0 {
		// Zero interest degenerates to simple division; the annuity
		// formula would be 0/0 here.
		payment = principal / n
	} else {
		growth := math.Pow(1+monthlyRate, n)
		payment = principal * monthlyRate * growth / (growth - 1)
	}

	if !isFinite(payment) {
		return EMIResult{}, ErrIndeterminate
	}

	total := payment * n
	return EMIResult{
		MonthlyPayment: payment,
		TotalPayment:   total,
		TotalInterest:  total - principal,
	}, nil
}

// ROI computes the simple return on investment in percent.
func ROI(initialValue, finalValue float64) (float64, error) {
	if initialValue == 0 {
		return 0, ErrIndeterminate
	}
	roi := (finalValue - initialValue) / initialValue * 100
	if !isFinite(roi) {
		return 0, ErrIndeterminate
	}
	return roi, nil
}

// CAGR computes the compound annual growth rate in percent. A negative
// value ratio has no real root when 1/years is fractional, making a final
// value below zero indeterminate for most tenures even though the plain ROI
// is not; integral exponents (e.g. a half-year period) keep their real
// result.
func CAGR(initialValue, finalValue, years float64) (float64, error) {
	if initialValue <= 0 || years == 0 {
		return 0, ErrIndeterminate
	}
	// math.Pow returns NaN for a negative base under a fractional
	// exponent, so the finiteness check below covers the non-real case.
	cagr := (math.Pow(finalValue/initialValue, 1/years) - 1) * 100
	if !isFinite(cagr) {
		return 0, ErrIndeterminate
	}
	return cagr, nil
}

// ReturnMetrics bundles both return figures for one investment. CAGRValid is
// false when the CAGR alone is indeterminate; ROIPercent is always defined
// when Returns succeeds.
type ReturnMetrics struct {
	ROIPercent  float64
	CAGRPercent float64
	CAGRValid   bool
}

// Returns computes ROI and CAGR together. It fails only when the ROI itself
// is indeterminate; an indeterminate CAGR is reported through CAGRValid so a
// caller can still show the simple return.
func Returns(initialValue, finalValue, years float64) (ReturnMetrics, error) {
	roi, err := ROI(initialValue, finalValue)
	if err != nil {
		return ReturnMetrics{}, err
	}
	m := ReturnMetrics{ROIPercent: roi}
	if cagr, err := CAGR(initialValue, finalValue, years); err == nil {
		m.CAGRPercent = cagr
		m.CAGRValid = true
	}
	return m, nil
}

// SIP computes the future value of a systematic investment plan paying
// monthlyContribution at annualRatePercent for years, with monthly
// compounding and contributions at the start of each period (annuity due).
func SIP(monthlyContribution, annualRatePercent, years float64) (float64, error) {
	r := annualRatePercent / 12 / 100
	n := years * 12

	var fv float64
	if r == 0 {
		fv = monthlyContribution * n
	} else {
		fv = monthlyContribution * ((math.Pow(1+r, n) - 1) / r) * (1 + r)
	}

	if !isFinite(fv) {
		return 0, ErrIndeterminate
	}
	return fv, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
