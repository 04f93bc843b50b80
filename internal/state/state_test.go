package state

import (
	"errors"
	"testing"

	"superhero/directory/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestPaginator_FirstSetKeepsFirstWindow(t *testing.T) {
	p := NewPaginator(20)
	require.Equal(t, domain.PageInfo{Offset: 0, Limit: 20}, p.PageInfo())

	p.SetOffset()
	require.Equal(t, 0, p.PageInfo().Offset)

	p.SetOffset()
	require.Equal(t, 20, p.PageInfo().Offset)

	p.SetOffset()
	require.Equal(t, 40, p.PageInfo().Offset)
}

func TestPaginator_SetAfterReset(t *testing.T) {
	p := NewPaginator(20)

	p.ResetOffset()
	require.Equal(t, 0, p.PageInfo().Offset)

	p.SetOffset()
	require.Equal(t, 20, p.PageInfo().Offset)
}

func TestPaginator_ResetIsIdempotent(t *testing.T) {
	p := NewPaginator(20)
	p.SetOffset()
	p.SetOffset()
	p.SetOffset()

	p.ResetOffset()
	p.ResetOffset()
	require.Equal(t, domain.PageInfo{Offset: 0, Limit: 20}, p.PageInfo())
}

func TestPaginator_NeverNegativeAndMonotonic(t *testing.T) {
	p := NewPaginator(7)
	prev := 0
	for i := 0; i < 50; i++ {
		p.SetOffset()
		off := p.PageInfo().Offset
		require.GreaterOrEqual(t, off, prev)
		require.GreaterOrEqual(t, off, 0)
		prev = off
	}
}

func TestPaginator_DefaultLimit(t *testing.T) {
	require.Equal(t, domain.DefaultPageLimit, NewPaginator(0).PageInfo().Limit)
	require.Equal(t, domain.DefaultPageLimit, NewPaginator(-5).PageInfo().Limit)
}

func TestViewState_Equal(t *testing.T) {
	require.True(t, Loading().Equal(Loading()))

	res := Result(nil, nil)
	require.False(t, res.Equal(res))
	require.False(t, Result(nil, nil).Equal(Result(nil, nil)))
	require.False(t, Loading().Equal(Result(nil, nil)))
	require.False(t, Result(nil, errors.New("x")).Equal(Loading()))
}

func TestSearchList_TransitionsForceLoading(t *testing.T) {
	s := NewSearchList(NewPaginator(20))
	require.True(t, s.ViewState().IsLoading())

	s.SetResult(nil, nil)
	require.False(t, s.ViewState().IsLoading())

	s.SetPageState(Set)
	require.True(t, s.ViewState().IsLoading())
	require.Equal(t, Set, s.PageState())
	require.Equal(t, 0, s.PageInfo().Offset)

	s.SetResult(nil, nil)
	s.SetPageState(Set)
	require.True(t, s.ViewState().IsLoading())
	require.Equal(t, 20, s.PageInfo().Offset)

	s.SetResult(nil, errors.New("boom"))
	require.EqualError(t, s.ViewState().Err(), "boom")

	s.SetPageState(Reset)
	require.True(t, s.ViewState().IsLoading())
	require.Equal(t, Reset, s.PageState())
	require.Equal(t, 0, s.PageInfo().Offset)
}

func TestSearchList_LoadingFlag(t *testing.T) {
	s := NewSearchList(NewPaginator(20))
	require.False(t, s.IsLoading())
	s.SetLoading(true)
	require.True(t, s.IsLoading())
}
