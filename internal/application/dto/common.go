package dto

// SortSpec criterio de orden enviado en el body de búsqueda.
type SortSpec struct {
	By  string `json:"by"`
	Dir string `json:"dir" validate:"omitempty,oneof=asc desc"`
}

// SearchRequest body estándar de los endpoints POST /search.
type SearchRequest struct {
	Search      string            `json:"search"`
	CurrentPage int               `json:"currentPage" validate:"min=0"`
	Limit       int               `json:"limit" validate:"min=0,max=100"`
	Filters     map[string]string `json:"filters"`
	Sort        SortSpec          `json:"sort"`
}

// Normalize aplica valores por defecto de página y límite.
func (r *SearchRequest) Normalize() {
	if r.CurrentPage <= 0 {
		r.CurrentPage = 1
	}
	if r.Limit <= 0 {
		r.Limit = 20
	}
	if r.Limit > 100 {
		r.Limit = 100
	}
	if r.Sort.Dir == "" {
		r.Sort.Dir = "desc"
	}
}

// Offset calcula el desplazamiento SQL a partir de la página.
func (r *SearchRequest) Offset() int {
	return (r.CurrentPage - 1) * r.Limit
}

// Pagination metadatos de página en las respuestas de búsqueda.
type Pagination struct {
	CurrentPage int `json:"currentPage"`
	Limit       int `json:"limit"`
	TotalItems  int `json:"totalItems"`
	TotalPages  int `json:"totalPages"`
}

// NewPagination calcula los metadatos a partir del total.
func NewPagination(currentPage, limit, totalItems int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (totalItems + limit - 1) / limit
	}
	return Pagination{CurrentPage: currentPage, Limit: limit, TotalItems: totalItems, TotalPages: totalPages}
}

// ErrorBody detalle de error en las respuestas {success:false, error:{...}}.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse envoltura de error HTTP.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// DataResponse envoltura de éxito {success, data}.
type DataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ListResponse envoltura de búsqueda paginada {success, data, pagination}.
type ListResponse struct {
	Success    bool       `json:"success"`
	Data       any        `json:"data"`
	Pagination Pagination `json:"pagination"`
}
