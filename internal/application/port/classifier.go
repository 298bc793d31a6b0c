package port

import "github.com/bnema/netguard/internal/domain/classifier"

// URLClassifier is the set of URL checks the request pipeline runs in order.
type URLClassifier interface {
	IsInternal(rawURL string) bool
	ClassifyProtocol(rawURL string) classifier.ProtocolClass
	ClassifySafety(rawURL string) classifier.SafetyVerdict
	ShouldUpgradeToHTTPS(rawURL string, enabled bool) bool
	IsAdOrTracker(rawURL string, enabled bool) bool
}

var _ URLClassifier = (*classifier.Classifier)(nil)
