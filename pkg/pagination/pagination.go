package pagination

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 12
	// MaxLimit caps how many rows any browse query can request.
	MaxLimit = 50
)

// Params holds page/limit inputs from controllers or services.
type Params struct {
	Page  int
	Limit int
}

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// NormalizePage clamps the page number to a 1-based value.
func NormalizePage(page int) int {
	if page <= 0 {
		return 1
	}
	return page
}

// Window returns the half-open [start, end) slice bounds for the given
// params over a collection of total elements.
func Window(params Params, total int) (int, int) {
	limit := NormalizeLimit(params.Limit)
	page := NormalizePage(params.Page)

	start := (page - 1) * limit
	if start >= total {
		return total, total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return start, end
}
