package repositories

// RepositoryProvider holds instances of all repository facades. Constructed
// once at startup and handed to the service container.
type RepositoryProvider struct {
	Trip       TripRepositoryFacade
	Item       ItemRepositoryFacade
	Category   CategoryRepositoryFacade
	Budget     BudgetRepositoryFacade
	Template   TemplateRepositoryFacade
	FxOverride FxOverrideRepositoryFacade
}
