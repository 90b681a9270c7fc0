package pagination

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Params captures the page window for list endpoints.
type Params struct {
	Page  int
	Limit int
}

// Normalize clamps the window to sane bounds.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p
}

// Offset returns the row offset for the normalized window.
func (p Params) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.Limit
}

// Meta describes the returned page alongside the total row count.
type Meta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// MetaFor builds response metadata for the given window and count.
func MetaFor(p Params, total int64) Meta {
	n := p.Normalize()
	return Meta{Page: n.Page, Limit: n.Limit, Total: total}
}
