package handlers

import (
	"retailops/internal/domain/catalogs/store"
	"retailops/internal/infrastructure/http/v1/dto"
)

// StoreHTTPHandler is the catalog handler specialized for stores.
type StoreHTTPHandler = CatalogHandler[
	*store.Store,
	dto.CreateStoreRequest,
	dto.UpdateStoreRequest,
]

// NewStoreHandler creates a new store handler.
func NewStoreHandler(base *BaseHandler, service *store.Service) *StoreHTTPHandler {
	config := CatalogHandlerConfig[
		*store.Store,
		dto.CreateStoreRequest,
		dto.UpdateStoreRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "store",

		MapCreateDTO: func(req dto.CreateStoreRequest) *store.Store {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateStoreRequest, existing *store.Store) *store.Store {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *store.Store) any {
			return dto.FromStore(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
