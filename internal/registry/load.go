package registry

import (
	"os"

	"github.com/Illian-Amerond/tagledger/internal/core/domain"
	"github.com/Illian-Amerond/tagledger/internal/logger"
)

// LoadFile reads and parses an external registry document. An empty
// path or an unreadable file yields an empty mapping after a warning,
// so the caller falls through to the built-in taxonomy alone.
func LoadFile(path string) domain.Registry {
	if path == "" {
		return domain.Registry{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("could not read tags registry %s: %v", path, err)
		return domain.Registry{}
	}
	return ParseExternal(string(data))
}

// ForPath resolves the registry used by one invocation: the built-in
// taxonomy overlaid with the external document at path, if any.
func ForPath(path string) domain.Registry {
	return Resolve(Builtin(), LoadFile(path))
}
