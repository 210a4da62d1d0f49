// Package mocks provides mock implementations for testing the identity subsystem.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockArtistRepository(ctrl)
//	mockRepo.EXPECT().ListByPersonID(gomock.Any(), gomock.Any()).Return(rows, nil)
package mocks

// Generate mock for AccountRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=account_repository_mock.go github.com/gigwire/identity-go/internal/core AccountRepository

// Generate mock for ArtistRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=artist_repository_mock.go github.com/gigwire/identity-go/internal/core ArtistRepository

// Generate mock for VenueRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=venue_repository_mock.go github.com/gigwire/identity-go/internal/core VenueRepository

// Generate mock for OrganizerRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=organizer_repository_mock.go github.com/gigwire/identity-go/internal/core OrganizerRepository

// Generate mock for SessionRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=session_repository_mock.go github.com/gigwire/identity-go/internal/core SessionRepository

// Generate mock for PermissionRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=permission_repository_mock.go github.com/gigwire/identity-go/internal/core PermissionRepository

// Generate mock for ActivityRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=activity_repository_mock.go github.com/gigwire/identity-go/internal/core ActivityRepository

// Generate mock for PostRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=post_repository_mock.go github.com/gigwire/identity-go/internal/core PostRepository
