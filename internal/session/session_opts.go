package session

import (
	"github.com/pixil98/go-saveinject/internal/inventory"
)

type Option func(*Session)

func WithGUIDGenerator(g inventory.GUIDGenerator) Option {
	return func(s *Session) {
		s.guids = g
	}
}

func WithBackupSuffix(suffix string) Option {
	return func(s *Session) {
		if suffix != "" {
			s.backupSuffix = suffix
		}
	}
}
