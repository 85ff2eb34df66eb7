package services

import (
	"context"
)

// HealthResult is the health check response
type HealthResult struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version,omitempty"`
}

// HealthService implements the health service
type HealthService struct {
	name    string
	version string
}

// NewHealthService creates a new health service
func NewHealthService(name, version string) *HealthService {
	return &HealthService{name: name, version: version}
}

// Check implements the health check method
func (s *HealthService) Check(ctx context.Context) (*HealthResult, error) {
	return &HealthResult{
		Status:  "healthy",
		Service: s.name,
		Version: s.version,
	}, nil
}
