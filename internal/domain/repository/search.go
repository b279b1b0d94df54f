package repository

// SearchQuery parámetros crudos de búsqueda paginada que reciben los repositorios.
// El caso de uso la construye desde el body {search, currentPage, limit, filters, sort}.
type SearchQuery struct {
	Term    string            // texto libre (ILIKE sobre columnas del recurso)
	Filters map[string]string // columna → valor exacto; solo columnas en la lista blanca del repo
	SortBy  string            // columna de orden; el repo valida contra su lista blanca
	SortDir string            // "asc" | "desc"
	Limit   int
	Offset  int
}
