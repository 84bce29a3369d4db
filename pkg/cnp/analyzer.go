package cnp

import (
	"fmt"
	"time"
)

// Analyzer orchestrates the validation pipeline: sanitize, structural
// validation, checksum (unless disabled), century resolution, date
// decoding, demographic classification. It short-circuits on the first
// failure and never decodes partially.
//
// The zero-configuration analyzer is the system of record: checksum
// enforced, official century table. Format-only acceptance and the
// age-plausibility heuristic are explicit opt-ins.
type Analyzer struct {
	checksum bool
	policy   CenturyPolicy
	clock    func() time.Time
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithoutChecksum disables control-digit verification, accepting any
// structurally valid 13-digit string. This widens the set of accepted
// identifiers and is part of the public contract of the analyzer built
// with it.
func WithoutChecksum() Option {
	return func(a *Analyzer) { a.checksum = false }
}

// WithCenturyPolicy selects the century resolution policy.
func WithCenturyPolicy(p CenturyPolicy) Option {
	return func(a *Analyzer) {
		if p == CenturyFixed || p == CenturyHeuristic {
			a.policy = p
		}
	}
}

// WithClock sets the reference clock used by the heuristic century policy.
func WithClock(clock func() time.Time) Option {
	return func(a *Analyzer) {
		if clock != nil {
			a.clock = clock
		}
	}
}

// NewAnalyzer builds an analyzer. Defaults: checksum enforced, fixed
// century table, real time.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		checksum: true,
		policy:   CenturyFixed,
		clock:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

// Validate runs only the validation stages (structure, then checksum when
// enabled) without demographic decoding.
func (a *Analyzer) Validate(input string) Outcome {
	out := ValidateFormat(input)
	if !out.Valid {
		return out
	}
	if a.checksum {
		return ValidateChecksum(Sanitize(input))
	}
	return out
}

// Analyze runs the full pipeline and assembles the composite result.
func (a *Analyzer) Analyze(input string) Result {
	if out := a.Validate(input); !out.Valid {
		return Result{Kind: out.Kind, Message: out.Message}
	}

	digits := Sanitize(input)
	leading := digit(digits, 0)
	yearCode := atoi2(digits, 1)
	monthCode := atoi2(digits, 3)
	dayCode := atoi2(digits, 5)

	century := ResolveCentury(leading, yearCode, a.policy, a.clock())
	birthDate, ok := decodeDate(century, yearCode, monthCode, dayCode)
	if !ok {
		return Result{Kind: KindImpossibleDate, Message: msgBadDate}
	}

	sex := ClassifySex(leading)
	return Result{
		Valid:       true,
		BirthDate:   birthDate,
		Sex:         sex,
		County:      CountyName(digits[7:9]),
		Century:     century,
		Description: describe(leading, sex, century),
	}
}

// describe builds the short human-readable summary shown next to a decoded
// identifier, e.g. "Female born in 21st century" or "Foreign citizen".
func describe(leading int, sex Sex, century int) string {
	if sex == SexForeign {
		return "Foreign citizen"
	}
	label := "Male"
	if sex == SexFemale {
		label = "Female"
	}
	// Leading 9 returned above, so this marks the resident digits 7 and 8.
	if ForeignStatus(leading) {
		label += " foreign resident"
	}
	return fmt.Sprintf("%s born in %s century", label, ordinal(century+1))
}

func ordinal(n int) string {
	switch n {
	case 21:
		return "21st"
	default:
		return fmt.Sprintf("%dth", n)
	}
}
