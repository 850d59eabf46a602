package service

import (
	"context"

	"linxblog/internal/apperror"
	"linxblog/internal/models"
	"linxblog/internal/repository"
)

type TablesService interface {
	Health(ctx context.Context) (*models.HealthStatus, error)
}

type tablesService struct {
	tablesRepo repository.TablesRepository
}

func NewTablesService(tablesRepo repository.TablesRepository) TablesService {
	return &tablesService{tablesRepo: tablesRepo}
}

func (t *tablesService) Health(ctx context.Context) (*models.HealthStatus, error) {
	if err := t.tablesRepo.Ping(ctx); err != nil {
		return nil, apperror.Internal(err)
	}

	countTables, err := t.tablesRepo.CountTablesDB(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &models.HealthStatus{
		Status:   "ok",
		Database: "up",
		Tables:   countTables,
	}, nil
}
