package neoxbridge

import (
	"context"
	"math"
	"time"
)

// TargetType selects which security check applies to a target.
type TargetType string

const (
	TargetAddress TargetType = "address"
	TargetToken   TargetType = "token"
	TargetURL     TargetType = "url"
)

// RiskLevel is an ordered risk tier. RiskUnknown sorts above RiskCritical
// so that comparisons against a threshold treat it as worst case.
type RiskLevel int

const (
	RiskLow RiskLevel = iota
	RiskMedium
	RiskHigh
	RiskCritical
	RiskUnknown
)

func (r RiskLevel) String() string {
	switch r {
	case RiskLow:
		return "low"
	case RiskMedium:
		return "medium"
	case RiskHigh:
		return "high"
	case RiskCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// RiskFromPassRate maps the fraction of passed sub-checks to a tier.
func RiskFromPassRate(rate float64) RiskLevel {
	switch {
	case rate >= 0.9:
		return RiskLow
	case rate >= 0.7:
		return RiskMedium
	case rate >= 0.5:
		return RiskHigh
	default:
		return RiskCritical
	}
}

// CheckDetail is the outcome of one sub-check.
type CheckDetail struct {
	Passed  bool
	Message string
	// Flags lists the raw indicators that caused a failure, if any.
	Flags []string
}

// SecurityResult is the verdict on one target. It is never mutated.
type SecurityResult struct {
	Target     string
	TargetType TargetType
	IsSafe     bool
	Risk       RiskLevel
	Confidence float64
	Passed     int
	Total      int
	Details    map[string]CheckDetail
	Source     string
	CheckedAt  time.Time
}

// NewSecurityResult scores a set of sub-check outcomes. A target is safe
// only when every sub-check passed and there was at least one.
func NewSecurityResult(target string, tt TargetType, details map[string]CheckDetail, source string, now time.Time) SecurityResult {
	total := len(details)
	passed := 0
	for _, d := range details {
		if d.Passed {
			passed++
		}
	}
	if total == 0 {
		return UnknownSecurityResult(target, tt, "no checks were run", source, now)
	}
	rate := float64(passed) / float64(total)
	return SecurityResult{
		Target:     target,
		TargetType: tt,
		IsSafe:     passed == total,
		Risk:       RiskFromPassRate(rate),
		Confidence: math.Min(rate+0.1, 1.0),
		Passed:     passed,
		Total:      total,
		Details:    details,
		Source:     source,
		CheckedAt:  now,
	}
}

// UnknownSecurityResult is the fail-closed verdict used whenever a check
// could not be completed.
func UnknownSecurityResult(target string, tt TargetType, reason, source string, now time.Time) SecurityResult {
	return SecurityResult{
		Target:     target,
		TargetType: tt,
		IsSafe:     false,
		Risk:       RiskUnknown,
		Confidence: 0,
		Passed:     0,
		Total:      1,
		Details:    map[string]CheckDetail{"error": {Passed: false, Message: reason}},
		Source:     source,
		CheckedAt:  now,
	}
}

// SecurityChecker scores targets. Implementations never return an error;
// failures produce a fail-closed result.
type SecurityChecker interface {
	Check(ctx context.Context, target string, tt TargetType) SecurityResult
}
