package classify

// Option applies a configuration option to the Classifier.
type Option func(*Classifier)

// WithHomeSide sets the team credited when the home bench has the
// skater advantage.
func WithHomeSide(team string) Option {
	return func(c *Classifier) {
		if team != "" {
			c.homeSide = team
		}
	}
}

// WithAwaySide sets the team credited when the away bench has the
// skater advantage.
func WithAwaySide(team string) Option {
	return func(c *Classifier) {
		if team != "" {
			c.awaySide = team
		}
	}
}
