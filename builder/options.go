// options.go — functional options resolving into an immutable buildConfig.
package builder

// Option configures optional behavior of FromReader and FromWords.
type Option func(*buildConfig)

// buildConfig holds the resolved builder configuration. No global state:
// every build resolves its own config from defaults plus options.
type buildConfig struct {
	// skipOutOfRange drops words outside [corpus.MinWordLen,
	// corpus.MaxWordLen] instead of returning ErrLengthOutOfRange.
	// Skipped words still participate in the ordering check.
	skipOutOfRange bool
}

// defaultConfig returns the configuration used when no options are given:
// strict length validation.
func defaultConfig() buildConfig {
	return buildConfig{skipOutOfRange: false}
}

// WithSkipOutOfRange returns an Option that silently discards words whose
// length is outside the supported range. This is how snapshots carrying
// single-letter entries ("a", "i") are normalized into a valid corpus.
func WithSkipOutOfRange() Option {
	return func(cfg *buildConfig) {
		cfg.skipOutOfRange = true
	}
}
