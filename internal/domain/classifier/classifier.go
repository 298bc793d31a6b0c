package classifier

// Classifier bundles the checks with their construction-time options.
type Classifier struct {
	reputation ReputationChecker
	blocklist  *Blocklist
}

// New creates a classifier. A nil reputation checker uses the default signatures.
func New(reputation ReputationChecker, blocklist *Blocklist) *Classifier {
	if reputation == nil {
		reputation = &StaticReputationChecker{signatures: DefaultSignatures}
	}
	if blocklist == nil {
		blocklist = NewBlocklist(DefaultBlocklist, true)
	}
	return &Classifier{reputation: reputation, blocklist: blocklist}
}

// Blocklist exposes the domain list (for toggling the keyword fallback).
func (c *Classifier) Blocklist() *Blocklist {
	return c.blocklist
}

func (c *Classifier) IsInternal(rawURL string) bool {
	return IsInternal(rawURL)
}

func (c *Classifier) ClassifyProtocol(rawURL string) ProtocolClass {
	return ClassifyProtocol(rawURL)
}

// ClassifySafety never panics on reputation checker failures; a panicking
// checker is treated as "no opinion".
func (c *Classifier) ClassifySafety(rawURL string) (verdict SafetyVerdict) {
	defer func() {
		if r := recover(); r != nil {
			verdict = Safe
		}
	}()
	return c.reputation.Check(rawURL)
}

func (c *Classifier) ShouldUpgradeToHTTPS(rawURL string, enabled bool) bool {
	return ShouldUpgradeToHTTPS(rawURL, enabled)
}

func (c *Classifier) IsAdOrTracker(rawURL string, enabled bool) bool {
	return c.blocklist.IsAdOrTracker(rawURL, enabled)
}
