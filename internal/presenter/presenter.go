package presenter

import (
	"context"
	"errors"
	"unicode/utf8"

	"superhero/directory/internal/domain"
	"superhero/directory/internal/l10n"
	"superhero/directory/internal/state"
	"superhero/directory/internal/transport"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -destination=mocks/mock_presenter.go -package=mocks superhero/directory/internal/presenter UseCase,Router

// MinSearchLength is the shortest search text, in characters, that starts a request
const MinSearchLength = 3

var errNoResult = errors.New("presenter: request finished without a result")

// UseCase loads pages of characters
type UseCase interface {
	Fetch(ctx context.Context, page domain.PageInfo) <-chan transport.Result[[]domain.Character]
	FetchSearch(ctx context.Context, prefix string, page domain.PageInfo) <-chan transport.Result[[]domain.Character]
	FetchMore(ctx context.Context, prefix string, page domain.PageInfo) <-chan transport.Result[[]domain.Character]
	Refresh(ctx context.Context, page domain.PageInfo) <-chan transport.Result[[]domain.Character]
}

// View renders the list. Calls are fire-and-forget and must not block.
type View interface {
	StartLoading()
	StopLoading()
	Consume(presentables []ViewModel)
	Show(title, message string)
}

// Router opens the detail screen for a selected character
type Router interface {
	ShowDetails(hero domain.Character)
}

// Executor runs fn on the presenter's execution context
type Executor interface {
	Execute(fn func())
}

type Localizer interface {
	Text(key string) string
}

// Presenter drives the search list screen. All methods must be called from
// the executor's context; request completions are posted back to it.
type Presenter struct {
	useCase   UseCase
	executor  Executor
	localizer Localizer

	state      *state.SearchList
	generation uint64

	// Not owned; either may be unset.
	view   View
	router Router
}

func New(useCase UseCase, paginator state.Paginator, executor Executor, localizer Localizer) *Presenter {
	return &Presenter{
		useCase:   useCase,
		executor:  executor,
		localizer: localizer,
		state:     state.NewSearchList(paginator),
	}
}

func (p *Presenter) SetView(view View) {
	p.view = view
}

func (p *Presenter) SetRouter(router Router) {
	p.router = router
}

// Fetch loads the next page of the unfiltered listing. Ignored while a
// request is in flight.
func (p *Presenter) Fetch(ctx context.Context) {
	if p.state.IsLoading() {
		return
	}
	p.setLoading(true)
	p.state.SetPageState(state.Set)
	p.await(p.useCase.Fetch(ctx, p.state.PageInfo()))
}

// FetchStartsWith starts a new prefix search from the first page. Text
// shorter than MinSearchLength is ignored and false is returned.
func (p *Presenter) FetchStartsWith(ctx context.Context, text string) bool {
	if utf8.RuneCountInString(text) < MinSearchLength {
		return false
	}
	p.setLoading(true)
	p.state.SetPageState(state.Reset)
	p.await(p.useCase.FetchSearch(ctx, text, p.state.PageInfo()))
	return true
}

// FetchMore loads the next page of the current search. Ignored while a
// request is in flight.
func (p *Presenter) FetchMore(ctx context.Context, text string) {
	if p.state.IsLoading() {
		return
	}
	p.setLoading(true)
	p.state.SetPageState(state.Set)
	p.await(p.useCase.FetchMore(ctx, text, p.state.PageInfo()))
}

// Refresh reloads the first page of the unfiltered listing
func (p *Presenter) Refresh(ctx context.Context) {
	p.setLoading(true)
	p.state.SetPageState(state.Reset)
	p.await(p.useCase.Refresh(ctx, p.state.PageInfo()))
}

func (p *Presenter) ViewDidSelect(presentable ViewModel) {
	if p.router == nil {
		return
	}
	p.router.ShowDetails(presentable.Character)
}

func (p *Presenter) IsLoading() bool {
	return p.state.IsLoading()
}

func (p *Presenter) PageInfo() domain.PageInfo {
	return p.state.PageInfo()
}

func (p *Presenter) ViewState() state.ViewState {
	return p.state.ViewState()
}

// await tags the request with a new generation and hands its result back to
// the executor. Only the latest generation may touch the state.
func (p *Presenter) await(results <-chan transport.Result[[]domain.Character]) {
	p.generation++
	gen := p.generation

	go func() {
		res, ok := <-results
		if !ok {
			res = transport.Failure[[]domain.Character](errNoResult)
		}
		p.executor.Execute(func() { p.complete(gen, res) })
	}()
}

func (p *Presenter) complete(gen uint64, res transport.Result[[]domain.Character]) {
	if gen != p.generation {
		log.Debugf("Discarding stale response of request %d, latest is %d", gen, p.generation)
		return
	}

	if res.Err != nil {
		p.handleError(res.Err)
		return
	}
	p.handleSuccess(res.Value)
}

func (p *Presenter) handleSuccess(heroes []domain.Character) {
	p.setLoading(false)
	p.state.SetResult(heroes, nil)

	presentables := make([]ViewModel, 0, len(heroes))
	for _, hero := range heroes {
		presentables = append(presentables, NewViewModel(hero, p.localizer))
	}

	log.Debugf("Loaded %d characters at offset %d", len(presentables), p.state.PageInfo().Offset)

	if p.view != nil {
		p.view.Consume(presentables)
	}
}

func (p *Presenter) handleError(err error) {
	p.setLoading(false)
	p.state.SetResult(nil, err)

	log.Warnf("⚠️ Failed to load characters: %v", err)

	if p.view != nil {
		p.view.Show(p.localizer.Text(l10n.ErrorTitle), p.errorMessage(err))
	}
}

func (p *Presenter) errorMessage(err error) string {
	kind, ok := transport.KindOf(err)
	if !ok {
		return p.localizer.Text(l10n.ErrorGeneric)
	}

	switch kind {
	case transport.KindUnreachable:
		return p.localizer.Text(l10n.ErrorUnreachable)
	case transport.KindClient:
		return p.localizer.Text(l10n.ErrorClient)
	case transport.KindServer:
		return p.localizer.Text(l10n.ErrorServer)
	case transport.KindNoData:
		return p.localizer.Text(l10n.ErrorNoData)
	case transport.KindDecoding:
		return p.localizer.Text(l10n.ErrorDecoding)
	default:
		return p.localizer.Text(l10n.ErrorGeneric)
	}
}

func (p *Presenter) setLoading(loading bool) {
	p.state.SetLoading(loading)

	if p.view == nil {
		return
	}
	if loading {
		p.view.StartLoading()
	} else {
		p.view.StopLoading()
	}
}
