package drawer

// Option configures a Controller during creation.
//
// Example:
//
//	c := drawer.New(320, 568,
//	    drawer.WithConfig(cfg),
//	    drawer.WithDelegate(d),
//	)
type Option func(*Controller)

// WithConfig replaces the default physics configuration.
func WithConfig(cfg Config) Option {
	return func(c *Controller) {
		c.Physics = cfg
	}
}

// WithGestureConfig replaces the default gesture configuration.
func WithGestureConfig(cfg GestureConfig) Option {
	return func(c *Controller) {
		c.Gestures = cfg
	}
}

// WithDelegate sets the delegate at creation time.
func WithDelegate(d Delegate) Option {
	return func(c *Controller) {
		c.delegate = d
	}
}
