package state

import "superhero/directory/internal/domain"

// Paginator tracks the page window of a listing
type Paginator interface {
	PageInfo() domain.PageInfo
	// ResetOffset moves back to the first window and marks it as requested
	ResetOffset()
	// SetOffset moves to the next window that has not been requested yet
	SetOffset()
}

type paginator struct {
	info      domain.PageInfo
	requested bool
}

// NewPaginator creates a paginator positioned before the first window.
// Non-positive limits fall back to domain.DefaultPageLimit.
func NewPaginator(limit int) Paginator {
	if limit <= 0 {
		limit = domain.DefaultPageLimit
	}
	return &paginator{info: domain.PageInfo{Offset: 0, Limit: limit}}
}

func (p *paginator) PageInfo() domain.PageInfo {
	return p.info
}

func (p *paginator) ResetOffset() {
	p.info.Offset = 0
	p.requested = true
}

func (p *paginator) SetOffset() {
	if !p.requested {
		p.requested = true
		return
	}
	p.info.Offset += p.info.Limit
}
