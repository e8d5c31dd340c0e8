package services

import (
	portsrepo "github.com/amirulhm/tripwise_backend/internal/core/ports/repositories"
	portssvc "github.com/amirulhm/tripwise_backend/internal/core/ports/services"
)

// NewServiceContainer wires all services over the repository provider and the
// shared live-rate provider chain.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, live portssvc.LiveRateProvider) *portssvc.ServiceContainer {
	conversion := NewConversionService(repos.FxOverride, live)

	return &portssvc.ServiceContainer{
		Trip:       NewTripService(repos.Trip),
		Item:       NewItemService(repos.Item, repos.Trip, conversion),
		Category:   NewCategoryService(repos.Category),
		Budget:     NewBudgetService(repos.Budget, repos.Trip),
		Template:   NewTemplateService(repos.Template, repos.Item),
		FxOverride: NewFxOverrideService(repos.FxOverride),
		Conversion: conversion,
		Reporting:  NewReportingService(repos.Trip, repos.Item, repos.Category),
	}
}

// Compile-time checks that the concrete services satisfy their facades.
var (
	_ portssvc.TripSvcFacade       = (*TripService)(nil)
	_ portssvc.ItemSvcFacade       = (*ItemService)(nil)
	_ portssvc.CategorySvcFacade   = (*CategoryService)(nil)
	_ portssvc.BudgetSvcFacade     = (*BudgetService)(nil)
	_ portssvc.TemplateSvcFacade   = (*TemplateService)(nil)
	_ portssvc.FxOverrideSvcFacade = (*FxOverrideService)(nil)
	_ portssvc.ConversionSvcFacade = (*ConversionService)(nil)
	_ portssvc.ReportingSvcFacade  = (*ReportingService)(nil)
	_ portssvc.LiveRateProvider    = (*RateProviderChain)(nil)
	_ portssvc.RateCache           = (*InMemoryRateCache)(nil)
)
