package postgres

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/ecocycle/ecocycle-ims/internal/domain/repository"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeTerm quita acentos del término de búsqueda; los códigos y SKUs se
// guardan sin acentos, así "almacén" encuentra "almacen".
func normalizeTerm(term string) string {
	out, _, err := transform.String(stripAccents, term)
	if err != nil {
		return term
	}
	return out
}

// searchSpec describe cómo un repositorio traduce SearchQuery a SQL:
// columnas de texto para el término libre, lista blanca de filtros y de orden.
// Todo nombre de columna sale de estas listas, nunca del request.
type searchSpec struct {
	textCols    []string          // columnas sobre las que aplica ILIKE el término
	filterCols  map[string]string // clave del filtro -> columna
	sortCols    map[string]string // clave de orden -> columna
	defaultSort string            // ORDER BY cuando no se pide orden válido
}

// where construye la cláusula WHERE y sus argumentos a partir de la consulta.
// Devuelve cadena vacía si no hay condiciones.
func (s searchSpec) where(q repository.SearchQuery) (string, []any) {
	var conds []string
	var args []any
	if q.Term != "" && len(s.textCols) > 0 {
		args = append(args, "%"+normalizeTerm(q.Term)+"%")
		n := len(args)
		likes := make([]string, 0, len(s.textCols))
		for _, col := range s.textCols {
			likes = append(likes, fmt.Sprintf("%s ILIKE $%d", col, n))
		}
		conds = append(conds, "("+strings.Join(likes, " OR ")+")")
	}
	for key, value := range q.Filters {
		col, ok := s.filterCols[key]
		if !ok {
			continue // filtro fuera de la lista blanca: se ignora
		}
		args = append(args, value)
		conds = append(conds, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// orderBy resuelve la cláusula ORDER BY contra la lista blanca de orden.
func (s searchSpec) orderBy(q repository.SearchQuery) string {
	col, ok := s.sortCols[q.SortBy]
	if !ok {
		return " ORDER BY " + s.defaultSort
	}
	dir := "DESC"
	if strings.EqualFold(q.SortDir, "asc") {
		dir = "ASC"
	}
	return fmt.Sprintf(" ORDER BY %s %s", col, dir)
}

// paginate agrega LIMIT/OFFSET numerando después de los argumentos del WHERE.
func paginate(args []any, limit, offset int) (string, []any) {
	args = append(args, limit, offset)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args)), args
}
