package domain

// DefaultPageLimit is the page size used when none is configured
const DefaultPageLimit = 20

// PageInfo is the offset/limit window of one page request
type PageInfo struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
