package usecase

import (
	"github.com/ecocycle/ecocycle-ims/internal/application/dto"
	"github.com/ecocycle/ecocycle-ims/internal/domain/repository"
)

// toSearchQuery convierte el body {search, currentPage, limit, filters, sort}
// en los parámetros crudos que reciben los repositorios.
func toSearchQuery(in dto.SearchRequest) repository.SearchQuery {
	in.Normalize()
	return repository.SearchQuery{
		Term:    in.Search,
		Filters: in.Filters,
		SortBy:  in.Sort.By,
		SortDir: in.Sort.Dir,
		Limit:   in.Limit,
		Offset:  in.Offset(),
	}
}
