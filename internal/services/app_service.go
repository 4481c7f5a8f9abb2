package services

import (
	"context"

	"github.com/isdelr/users-be/internal/database"
	"gorm.io/gorm"
)

// AppServiceProvider defines the interface for service-level endpoints.
type AppServiceProvider interface {
	Hello() string
	Health(ctx context.Context) error
}

// AppService answers the root and health endpoints.
type AppService struct {
	db *gorm.DB
}

// NewAppService creates a new AppService.
func NewAppService(db *gorm.DB) *AppService {
	return &AppService{db: db}
}

// Hello returns the root greeting.
func (s *AppService) Hello() string {
	return "Hello World!"
}

// Health reports whether the database is reachable.
func (s *AppService) Health(ctx context.Context) error {
	return database.Ping(ctx, s.db)
}
