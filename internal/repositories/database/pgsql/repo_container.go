package pgsql

import (
	portsrepo "github.com/amirulhm/tripwise_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Trip:       NewPgxTripRepository(dbPool),
		Item:       NewPgxItemRepository(dbPool),
		Category:   NewPgxCategoryRepository(dbPool),
		Budget:     NewPgxBudgetRepository(dbPool),
		Template:   NewPgxTemplateRepository(dbPool),
		FxOverride: NewPgxFxOverrideRepository(dbPool),
	}
}
