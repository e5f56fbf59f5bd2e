package pkg

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dinaskp/perikanan-backend/internal/domain"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// reservedParams lists query parameter names used for pagination and search,
// not for entity filtering.
var reservedParams = map[string]bool{
	"page":   true,
	"limit":  true,
	"search": true,
}

// validColumnName matches only alphanumeric characters and underscores.
// Column names fed into SQL fragments must pass this to prevent injection.
var validColumnName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ParsePageRequest extracts pagination, search, and filter parameters from
// the query string. A blank or whitespace-only search term is treated as
// "no filter". Unknown filter keys are carried as-is; scoping against the
// entity's recognized filter map happens in the query layer.
func ParsePageRequest(c *gin.Context) domain.PageRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	if page < 1 {
		page = defaultPage
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	filter := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if reservedParams[key] {
			continue
		}
		if len(values) > 0 && values[0] != "" {
			filter[key] = values[0]
		}
	}

	return domain.PageRequest{
		Page:   page,
		Limit:  limit,
		Search: strings.TrimSpace(c.Query("search")),
		Filter: filter,
	}
}

// Paginate returns a GORM scope applying LIMIT and OFFSET for the request.
func Paginate(req domain.PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(req.Offset()).Limit(req.Limit)
	}
}

// Search returns a GORM scope that ORs a case-insensitive substring match of
// the search term across the given text columns. An empty term or empty
// column list yields no predicate.
func Search(term string, columns []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		term = strings.TrimSpace(term)
		if term == "" || len(columns) == 0 {
			return db
		}

		pattern := "%" + strings.ToLower(term) + "%"
		var (
			clauses []string
			args    []any
		)
		for _, col := range columns {
			if !validColumnName.MatchString(col) {
				continue
			}
			clauses = append(clauses, "LOWER("+col+") LIKE ?")
			args = append(args, pattern)
		}
		if len(clauses) == 0 {
			return db
		}
		return db.Where(strings.Join(clauses, " OR "), args...)
	}
}

// Filter returns a GORM scope applying equality predicates for every
// recognized filter. The columns map translates query parameter names to
// column names; unrecognized filter keys are silently ignored, never an
// error. A present filter with value "0" is a real constraint; absence,
// not zero, means "unset".
func Filter(filter map[string]string, columns map[string]string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for key, value := range filter {
			col, ok := columns[key]
			if !ok {
				continue
			}
			if !validColumnName.MatchString(col) {
				continue
			}
			db = db.Where(col+" = ?", value)
		}
		return db
	}
}

// NewPageResult assembles a PageResult with computed TotalPages.
// totalPages = ceil(total/limit), so a zero total yields zero pages.
func NewPageResult[T any](data []T, total int64, req domain.PageRequest) *domain.PageResult[T] {
	totalPages := 0
	if req.Limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(req.Limit)))
	}

	if data == nil {
		data = []T{}
	}

	return &domain.PageResult[T]{
		Data: data,
		Pagination: domain.Pagination{
			Page:       req.Page,
			Limit:      req.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}
