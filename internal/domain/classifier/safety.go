package classifier

import (
	"fmt"
	"regexp"
)

// SafetyVerdict is the outcome of a reputation lookup.
type SafetyVerdict struct {
	Safe   bool
	Reason string
}

// Safe is the verdict for URLs with no known concern.
var Safe = SafetyVerdict{Safe: true}

// ReputationChecker decides whether a URL is known to be harmful.
// The static checker below matches fixed signatures; a live lookup service can
// implement the same interface without touching the pipeline.
type ReputationChecker interface {
	Check(rawURL string) SafetyVerdict
}

// Signature is one named pattern of the static checker.
type Signature struct {
	Reason  string
	Pattern *regexp.Regexp
}

// DefaultSignatures are heuristic phishing/malware markers.
// They are keyword matches on the URL text, not a reputation feed.
var DefaultSignatures = []Signature{
	{Reason: "phishing", Pattern: regexp.MustCompile(`(?i)phishing`)},
	{Reason: "malware", Pattern: regexp.MustCompile(`(?i)malware`)},
	{Reason: "scam", Pattern: regexp.MustCompile(`(?i)scam`)},
	{Reason: "fake-login", Pattern: regexp.MustCompile(`(?i)fake-login`)},
	{Reason: "steal-password", Pattern: regexp.MustCompile(`(?i)steal-password`)},
	{Reason: "credential-harvest", Pattern: regexp.MustCompile(`(?i)credential-harvest`)},
	{Reason: "shortened login link", Pattern: regexp.MustCompile(`(?i)bit\.ly/.*login`)},
	{Reason: "shortened account link", Pattern: regexp.MustCompile(`(?i)tinyurl\.com/.*account`)},
}

// StaticReputationChecker matches URLs against a fixed signature list.
// There is no refresh mechanism; the list is fixed at construction.
type StaticReputationChecker struct {
	signatures []Signature
}

// NewStaticReputationChecker builds a checker from the default signatures plus
// extra case-insensitive patterns (typically from config).
func NewStaticReputationChecker(extra ...string) (*StaticReputationChecker, error) {
	sigs := make([]Signature, 0, len(DefaultSignatures)+len(extra))
	sigs = append(sigs, DefaultSignatures...)
	for _, p := range extra {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, fmt.Errorf("invalid safe browsing pattern %q: %w", p, err)
		}
		sigs = append(sigs, Signature{Reason: p, Pattern: re})
	}
	return &StaticReputationChecker{signatures: sigs}, nil
}

// Check returns the first matching signature. First match wins.
func (c *StaticReputationChecker) Check(rawURL string) SafetyVerdict {
	for _, sig := range c.signatures {
		if sig.Pattern.MatchString(rawURL) {
			return SafetyVerdict{Safe: false, Reason: sig.Reason}
		}
	}
	return Safe
}

var _ ReputationChecker = (*StaticReputationChecker)(nil)
