package config

import (
	"github.com/SreenikethanI/mp4-recovery-experience/internal/config"
	"github.com/SreenikethanI/mp4-recovery-experience/pkg/configdef"
)

type Creator interface {
	configdef.Creator
}

// DefaultCreator writes the built in defaults out as the user's config
// file, refusing to replace one which already exists.
func DefaultCreator() Creator {
	return config.DefaultCreator()
}
