package config

import (
	"github.com/SreenikethanI/mp4-recovery-experience/internal/config"
	"github.com/SreenikethanI/mp4-recovery-experience/pkg/configdef"
)

type Resolver interface {
	configdef.Resolver
}

// DefaultResolver loads the user's config file over the built in defaults.
func DefaultResolver() Resolver {
	return config.DefaultResolver()
}
