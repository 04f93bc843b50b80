package state

import "superhero/directory/internal/domain"

// PaginationState is the transition applied to the page window before a request
type PaginationState int

const (
	Reset PaginationState = iota
	Set
)

func (s PaginationState) String() string {
	if s == Set {
		return "set"
	}
	return "reset"
}

// ViewState is either Loading or the outcome of the last request
type ViewState struct {
	loading bool
	records []domain.Character
	err     error
}

func Loading() ViewState {
	return ViewState{loading: true}
}

func Result(records []domain.Character, err error) ViewState {
	return ViewState{records: records, err: err}
}

func (v ViewState) IsLoading() bool {
	return v.loading
}

func (v ViewState) Records() []domain.Character {
	return v.records
}

func (v ViewState) Err() error {
	return v.err
}

// Equal reports true only when both states are Loading. Two results never
// compare equal, so every delivered result counts as a change.
func (v ViewState) Equal(other ViewState) bool {
	return v.loading && other.loading
}

// SearchList is the state of one search list screen. It is owned by a single
// presenter and must only be touched from that presenter's execution context.
type SearchList struct {
	paginator Paginator
	loading   bool
	viewState ViewState
	pageState PaginationState
}

func NewSearchList(paginator Paginator) *SearchList {
	return &SearchList{
		paginator: paginator,
		viewState: Loading(),
		pageState: Reset,
	}
}

func (s *SearchList) PageInfo() domain.PageInfo {
	return s.paginator.PageInfo()
}

func (s *SearchList) PageState() PaginationState {
	return s.pageState
}

// SetPageState applies the transition to the page window and puts the view
// back into Loading.
func (s *SearchList) SetPageState(ps PaginationState) {
	s.pageState = ps
	if ps == Set {
		s.paginator.SetOffset()
	} else {
		s.paginator.ResetOffset()
	}
	s.viewState = Loading()
}

func (s *SearchList) ViewState() ViewState {
	return s.viewState
}

func (s *SearchList) SetResult(records []domain.Character, err error) {
	s.viewState = Result(records, err)
}

func (s *SearchList) IsLoading() bool {
	return s.loading
}

func (s *SearchList) SetLoading(loading bool) {
	s.loading = loading
}
