package services

import (
	"context"

	"github.com/methodhub/backend/database"
	"github.com/methodhub/backend/repositories"
)

// Counter is the slice of a repository the info endpoint needs.
type Counter interface {
	Count(ctx context.Context, where repositories.Where) (int, error)
}

type PoolStats struct {
	TotalConnections int   `json:"totalConnections"`
	IdleConnections  int   `json:"idleConnections"`
	WaitingCount     int64 `json:"waitingCount"`
}

type DatabaseInfo struct {
	IsConnected   bool      `json:"isConnected"`
	Stats         PoolStats `json:"stats"`
	UserCount     int       `json:"userCount"`
	MaterialCount int       `json:"materialCount"`
}

// AppService answers the banner and database-info endpoints.
type AppService struct {
	db        *database.DB
	users     Counter
	materials Counter
}

func NewAppService(db *database.DB, users, materials Counter) *AppService {
	return &AppService{db: db, users: users, materials: materials}
}

func (s *AppService) Banner() string {
	return "MethodHub API - Digital Library of Methodological Materials"
}

func (s *AppService) DatabaseInfo(ctx context.Context) (*DatabaseInfo, error) {
	userCount, err := s.users.Count(ctx, nil)
	if err != nil {
		return nil, err
	}
	materialCount, err := s.materials.Count(ctx, nil)
	if err != nil {
		return nil, err
	}

	stats := s.db.Stats()
	return &DatabaseInfo{
		IsConnected: s.db.IsConnected(ctx),
		Stats: PoolStats{
			TotalConnections: stats.OpenConnections,
			IdleConnections:  stats.Idle,
			WaitingCount:     stats.WaitCount,
		},
		UserCount:     userCount,
		MaterialCount: materialCount,
	}, nil
}
