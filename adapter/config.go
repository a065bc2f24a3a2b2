package adapter

import (
	"github.com/sirupsen/logrus"

	navskema "github.com/reoring/navskema"
	"github.com/reoring/navskema/icon"
	"github.com/reoring/navskema/internal/logging"
)

// Config carries the collaborators shared by platform adapters.
type Config struct {
	Logger logrus.FieldLogger
	Icons  icon.Lookup
}

// Option customizes a Config.
type Option func(*Config)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithIcons sets the icon lookup.
func WithIcons(l icon.Lookup) Option {
	return func(c *Config) { c.Icons = l }
}

// NewConfig applies opts over the defaults: the shared logger and
// placeholder icons.
func NewConfig(opts ...Option) Config {
	c := Config{Logger: logging.Logger(), Icons: icon.Placeholder{}}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// Load binds name (or the root stack when name is empty) and logs a
// diagnostic when the binding fails.
func (c Config) Load(platform string, s *navskema.Schema, name string) (*Navigator, error) {
	var (
		nav *Navigator
		err error
	)
	if name == "" {
		nav, err = BindRoot(s)
	} else {
		nav, err = Bind(s, name)
	}
	if err != nil {
		c.Logger.WithFields(logrus.Fields{
			"platform":  platform,
			"navigator": name,
		}).WithError(err).Warn("cannot render navigator, showing placeholder")
		return nil, err
	}
	c.Logger.WithFields(logrus.Fields{
		"platform":  platform,
		"navigator": nav.Name,
		"items":     len(nav.Items),
	}).Debug("navigator bound")
	return nav, nil
}

// Icon resolves the glyph of an item, reporting false for items without an
// icon.
func (c Config) Icon(it Item, focused bool, size int) (icon.Glyph, bool) {
	if it.Icon == "" || c.Icons == nil {
		return icon.Glyph{}, false
	}
	return c.Icons.Glyph(it.Icon, focused, size)
}
