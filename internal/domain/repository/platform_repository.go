// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the use case layer and the infrastructure layer.
package repository

import (
	"context"

	"salesboard/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrPlatformNotFound is returned when a platform lookup matches nothing.
var ErrPlatformNotFound = errors.New("platform not found")

// PlatformRepository defines persistence operations for sales channels.
type PlatformRepository interface {
	// GetOrCreateByName returns the platform with the given name, creating it first if absent.
	// Safe under concurrent callers using the same name.
	GetOrCreateByName(ctx context.Context, name string) (*entity.Platform, error)

	// FindByName retrieves a platform by its exact name.
	FindByName(ctx context.Context, name string) (*entity.Platform, error)

	// List returns all platforms ordered by name.
	List(ctx context.Context) ([]*entity.Platform, error)
}
