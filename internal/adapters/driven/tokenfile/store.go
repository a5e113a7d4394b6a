// Package tokenfile persists the OAuth credential payload as a JSON file
// in the user's home directory.
package tokenfile

import (
	"os"
	"path/filepath"

	"github.com/roomctl/roomctl/internal/core/domain"
	"github.com/roomctl/roomctl/internal/core/ports/driven"
	"github.com/roomctl/roomctl/internal/logger"
)

// DefaultFileName is the credential file name under the home directory.
const DefaultFileName = ".webex_tokens.json"

// Ensure Store implements the interface.
var _ driven.TokenStore = (*Store)(nil)

// Store is a file-based TokenStore. The file holds the token endpoint's
// payload verbatim; concurrent writers are not supported (single-user CLI).
type Store struct {
	path string
}

// NewStore creates a token store at path. If path is empty it defaults to
// DefaultFileName in the user's home directory.
func NewStore(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, DefaultFileName)
	}
	return &Store{path: path}, nil
}

// Load reads the credential file. A missing file means not authenticated.
// A file that does not parse as a token payload is treated the same way,
// with a diagnostic; it is never a fatal error.
func (s *Store) Load() (*domain.TokenSet, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	tokens, err := domain.ParseTokenSet(data)
	if err != nil {
		logger.Warn("existing tokens file is invalid, will re-authenticate: %v", err)
		return nil, nil
	}
	return tokens, nil
}

// Save writes the credential payload, replacing any previous content.
func (s *Store) Save(tokens *domain.TokenSet) error {
	return os.WriteFile(s.path, tokens.Raw, 0600)
}

// Clear deletes the credential file if present.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Path returns the credential file path.
func (s *Store) Path() string {
	return s.path
}
