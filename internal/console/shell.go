package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"superhero/directory/internal/presenter"

	log "github.com/sirupsen/logrus"
)

// ErrQuit is returned by Run when the user asks to leave
var ErrQuit = errors.New("console: quit")

const helpText = `Commands:
  list             print the loaded characters
  search <prefix>  find characters whose name starts with prefix
  more             load the next page
  refresh          reload the first page of all characters
  show <n>         print details of the n-th character
  help             print this help
  quit             leave`

// Presenter is the subset of presenter.Presenter the shell drives
type Presenter interface {
	Fetch(ctx context.Context)
	FetchStartsWith(ctx context.Context, text string) bool
	FetchMore(ctx context.Context, text string)
	Refresh(ctx context.Context)
	ViewDidSelect(presentable presenter.ViewModel)
}

// Shell reads commands line by line and dispatches them to the presenter on
// the executor. Everything except reading input happens on the executor.
type Shell struct {
	in        io.Reader
	out       io.Writer
	executor  presenter.Executor
	presenter Presenter
	view      *View

	// Current search prefix, empty for the full listing. Executor only.
	query string
}

func NewShell(in io.Reader, out io.Writer, executor presenter.Executor, p Presenter, view *View) *Shell {
	return &Shell{
		in:        in,
		out:       out,
		executor:  executor,
		presenter: p,
		view:      view,
	}
}

// Run reads commands until input ends, ctx is done or the user quits.
// It returns ErrQuit on quit and nil at the end of input.
func (s *Shell) Run(ctx context.Context) error {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		var err error
		defer func() {
			readErr <- err
			close(lines)
		}()

		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		err = scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read command: %w", err)
				}
				return nil
			}

			cmd, arg := parseCommand(line)
			switch cmd {
			case "":
				continue
			case "quit", "exit":
				return ErrQuit
			}

			log.Debugf("Command %q %q", cmd, arg)
			s.executor.Execute(func() { s.dispatch(ctx, cmd, arg) })
		}
	}
}

func (s *Shell) dispatch(ctx context.Context, cmd, arg string) {
	switch cmd {
	case "list":
		s.view.List()
	case "search":
		if !s.presenter.FetchStartsWith(ctx, arg) {
			fmt.Fprintf(s.out, "Type at least %d characters to search.\n", presenter.MinSearchLength)
			return
		}
		// Results are posted to the executor after this call returns.
		s.query = arg
		s.view.Clear()
	case "more":
		if s.query == "" {
			s.presenter.Fetch(ctx)
		} else {
			s.presenter.FetchMore(ctx, s.query)
		}
	case "refresh":
		s.query = ""
		s.view.Clear()
		s.presenter.Refresh(ctx)
	case "show":
		n, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintln(s.out, "Usage: show <n>")
			return
		}
		vm, ok := s.view.Item(n)
		if !ok {
			fmt.Fprintf(s.out, "No character #%d, %d loaded.\n", n, s.view.Len())
			return
		}
		s.presenter.ViewDidSelect(vm)
	case "help":
		fmt.Fprintln(s.out, helpText)
	default:
		fmt.Fprintf(s.out, "Unknown command %q. Type help for the list of commands.\n", cmd)
	}
}

func parseCommand(line string) (cmd, arg string) {
	line = strings.TrimSpace(line)
	cmd, arg, _ = strings.Cut(line, " ")
	return strings.ToLower(cmd), strings.TrimSpace(arg)
}
