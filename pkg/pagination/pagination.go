package pagination

import "math"

const (
	// DefaultLimit is the catalog page size when a limit is not provided.
	DefaultLimit = 24
	// MaxLimit caps how many rows any page query can request.
	MaxLimit = 100
	// DefaultPage is the first page; pages are 1-based.
	DefaultPage = 1
)

// Params holds page-based pagination inputs from controllers or services.
type Params struct {
	Page  int
	Limit int
}

// Meta is the pagination block returned with list responses.
type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
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

// Normalize applies the page and limit defaults.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	p.Limit = NormalizeLimit(p.Limit)
	return p
}

// Offset returns the row offset for the normalized page. Pages past the
// addressable range saturate at math.MaxInt and so select no rows.
func (p Params) Offset() int {
	n := p.Normalize()
	if n.Page-1 > math.MaxInt/n.Limit {
		return math.MaxInt
	}
	return (n.Page - 1) * n.Limit
}

// MetaFor builds the response meta for total matching rows.
func (p Params) MetaFor(total int64) Meta {
	n := p.Normalize()
	return Meta{
		Total:      total,
		Page:       n.Page,
		Limit:      n.Limit,
		TotalPages: TotalPages(total, n.Limit),
	}
}

// TotalPages is ceil(total/limit); zero rows yield zero pages.
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
