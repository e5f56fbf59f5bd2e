package tools

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dinaskp/perikanan-backend/internal/domain"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// stringArg reads an optional string argument.
func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

// requireString reads a mandatory string argument.
func requireString(args map[string]any, key string) (string, error) {
	s := strings.TrimSpace(stringArg(args, key))
	if s == "" {
		return "", fmt.Errorf("argumen %q wajib diisi", key)
	}
	return s, nil
}

// intArg reads an optional integer argument. JSON numbers arrive as
// float64; string digits are accepted too.
func intArg(args map[string]any, key string, fallback int) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// requireID reads a mandatory positive id argument.
func requireID(args map[string]any, key string) (uint, error) {
	n := intArg(args, key, 0)
	if n < 1 {
		return 0, fmt.Errorf("argumen %q wajib berupa id positif", key)
	}
	return uint(n), nil
}

// pageRequest assembles a PageRequest from page, limit, search, and a
// filter object, applying the same defaults and clamping as the HTTP
// listing surface.
func pageRequest(args map[string]any) domain.PageRequest {
	page := intArg(args, "page", defaultPage)
	if page < 1 {
		page = defaultPage
	}

	limit := intArg(args, "limit", defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	filter := make(map[string]string)
	if raw, ok := args["filter"].(map[string]any); ok {
		for key, value := range raw {
			switch v := value.(type) {
			case string:
				if v != "" {
					filter[key] = v
				}
			case float64:
				filter[key] = strconv.FormatFloat(v, 'f', -1, 64)
			case bool:
				filter[key] = strconv.FormatBool(v)
			}
		}
	}

	return domain.PageRequest{
		Page:   page,
		Limit:  limit,
		Search: strings.TrimSpace(stringArg(args, "search")),
		Filter: filter,
	}
}
