package console

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"superhero/directory/internal/domain"
	"superhero/directory/internal/l10n"
	"superhero/directory/internal/presenter"

	"github.com/stretchr/testify/require"
)

// serial runs tasks one at a time in submission order, like the session loop
type serial struct {
	running bool
	queue   []func()
}

func (s *serial) Execute(fn func()) {
	s.queue = append(s.queue, fn)
	if s.running {
		return
	}
	s.running = true
	for len(s.queue) > 0 {
		next := s.queue[0]
		s.queue = s.queue[1:]
		next()
	}
	s.running = false
}

type fakePresenter struct {
	executor *serial
	view     *View
	calls    []string
	shown    []presenter.ViewModel
}

func (p *fakePresenter) deliver(names ...string) {
	presentables := make([]presenter.ViewModel, 0, len(names))
	for _, name := range names {
		presentables = append(presentables, presenter.ViewModel{Name: name})
	}
	p.executor.Execute(func() { p.view.Consume(presentables) })
}

func (p *fakePresenter) Fetch(context.Context) {
	p.calls = append(p.calls, "fetch")
	p.deliver("A-Bomb")
}

func (p *fakePresenter) FetchStartsWith(_ context.Context, text string) bool {
	p.calls = append(p.calls, "search "+text)
	if len([]rune(text)) < presenter.MinSearchLength {
		return false
	}
	p.deliver("Thor", "Thor Girl")
	return true
}

func (p *fakePresenter) FetchMore(_ context.Context, text string) {
	p.calls = append(p.calls, "more "+text)
	p.deliver("Thunderball")
}

func (p *fakePresenter) Refresh(context.Context) {
	p.calls = append(p.calls, "refresh")
	p.deliver("A-Bomb")
}

func (p *fakePresenter) ViewDidSelect(vm presenter.ViewModel) {
	p.shown = append(p.shown, vm)
}

func newTestShell(input string) (*Shell, *fakePresenter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	view := NewView(out)
	executor := &serial{}
	p := &fakePresenter{executor: executor, view: view}
	return NewShell(strings.NewReader(input), out, executor, p, view), p, out
}

func TestView_ConsumeNumbersAcrossPages(t *testing.T) {
	out := &bytes.Buffer{}
	v := NewView(out)

	v.StartLoading()
	require.True(t, v.IsLoading())
	v.StopLoading()
	require.False(t, v.IsLoading())

	v.Consume([]presenter.ViewModel{{Name: "Thor"}, {Name: "Thor Girl"}})
	v.Consume([]presenter.ViewModel{{Name: "Thunderball"}})

	require.Equal(t, 3, v.Len())
	require.Contains(t, out.String(), "   1. Thor\n")
	require.Contains(t, out.String(), "   3. Thunderball\n")

	vm, ok := v.Item(2)
	require.True(t, ok)
	require.Equal(t, "Thor Girl", vm.Name)

	_, ok = v.Item(0)
	require.False(t, ok)
	_, ok = v.Item(4)
	require.False(t, ok)

	v.Clear()
	require.Zero(t, v.Len())
}

func TestView_EmptyPages(t *testing.T) {
	out := &bytes.Buffer{}
	v := NewView(out)

	v.Consume(nil)
	require.Contains(t, out.String(), "No characters found.")

	v.Consume([]presenter.ViewModel{{Name: "Thor"}})
	v.Consume(nil)
	require.Contains(t, out.String(), "No more characters.")
}

func TestView_Show(t *testing.T) {
	out := &bytes.Buffer{}
	NewView(out).Show("Error", "The server returned no data.")
	require.Equal(t, "❌ Error: The server returned no data.\n", out.String())
}

func TestRouter_ShowDetails(t *testing.T) {
	var hero domain.Superhero
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Thor","description":"God of <i>Thunder</i>","thumbnail":{"path":"http://i.annihil.us/thor","extension":"jpg"}}`), &hero))

	out := &bytes.Buffer{}
	r := NewRouter(out, l10n.New("en"))
	r.ShowDetails(hero)

	require.Contains(t, out.String(), "Thor\n")
	require.Contains(t, out.String(), "God of Thunder\n")
	require.Contains(t, out.String(), "http://i.annihil.us/thor/portrait_xlarge.jpg")

	out.Reset()
	r.ShowDetails(nil)
	require.Empty(t, out.String())
}

func TestShell_Dispatch(t *testing.T) {
	input := strings.Join([]string{
		"more",
		"search th",
		"SEARCH thor",
		"",
		"more",
		"show 3",
		"show 9",
		"show x",
		"refresh",
		"more",
		"list",
		"help",
		"bogus",
	}, "\n")

	shell, p, out := newTestShell(input)
	require.NoError(t, shell.Run(context.Background()))

	require.Equal(t, []string{"fetch", "search th", "search thor", "more thor", "refresh", "fetch"}, p.calls)
	require.Len(t, p.shown, 1)
	require.Equal(t, "Thunderball", p.shown[0].Name)

	text := out.String()
	require.Contains(t, text, "Type at least 3 characters to search.")
	require.Contains(t, text, "No character #9, 3 loaded.")
	require.Contains(t, text, "Usage: show <n>")
	require.Contains(t, text, "search <prefix>")
	require.Contains(t, text, `Unknown command "bogus"`)
	require.Equal(t, 2, shell.view.Len())
}

func TestShell_Quit(t *testing.T) {
	shell, p, _ := newTestShell("refresh\nquit\nmore\n")

	require.ErrorIs(t, shell.Run(context.Background()), ErrQuit)
	require.Equal(t, []string{"refresh"}, p.calls)
}

func TestShell_StopsOnContext(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	out := &bytes.Buffer{}
	view := NewView(out)
	executor := &serial{}
	shell := NewShell(pr, out, executor, &fakePresenter{executor: executor, view: view}, view)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- shell.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("shell did not stop")
	}
}

func TestParseCommand(t *testing.T) {
	cmd, arg := parseCommand("  Search   spider man ")
	require.Equal(t, "search", cmd)
	require.Equal(t, "spider man", arg)

	cmd, arg = parseCommand("   ")
	require.Empty(t, cmd)
	require.Empty(t, arg)
}
