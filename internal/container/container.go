package container

import (
	"context"
	"errors"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"superhero/directory/internal/client"
	"superhero/directory/internal/config"
	"superhero/directory/internal/console"
	"superhero/directory/internal/l10n"
	"superhero/directory/internal/presenter"
	"superhero/directory/internal/proxy"
	"superhero/directory/internal/session"
	"superhero/directory/internal/state"
	"superhero/directory/internal/transport"

	log "github.com/sirupsen/logrus"
)

const (
	loopBuffer   = 64
	idleInterval = 50 * time.Millisecond
)

// Container holds all initialized components
type Container struct {
	Config    *config.Config
	Client    client.SuperheroClient
	Loop      *session.Loop
	Presenter *presenter.Presenter

	view  *console.View
	shell *console.Shell
}

// New creates a new container with all dependencies initialized. Commands
// are read from in and the screen is written to out.
func New(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) (*Container, error) {
	if cfg == nil {
		return nil, errors.New("container: config is required")
	}

	container := &Container{
		Config: cfg,
	}

	// Initialize ProxySupplier
	proxySupplier := proxy.NewProxySupplier(ctx, cfg.Transport.Proxies, cfg.Marvel.BaseURL)
	if len(cfg.Transport.Proxies) > 0 && proxySupplier.Len() == 0 {
		log.Warn("⚠️ None of the configured proxies work, connecting directly")
	}

	requester := transport.NewClient(cfg.Transport, proxySupplier)
	container.Client = client.NewMarvelClient(cfg.Marvel, requester)

	localizer := l10n.New(cfg.App.Language)
	log.Infof("🌐 Language: %s", localizer.Language())

	container.Loop = session.NewLoop(loopBuffer)
	container.Presenter = presenter.New(
		container.Client,
		state.NewPaginator(cfg.Marvel.PageLimit),
		container.Loop,
		localizer,
	)

	container.view = console.NewView(out)
	container.Presenter.SetView(container.view)
	container.Presenter.SetRouter(console.NewRouter(out, localizer))

	container.shell = console.NewShell(in, out, container.Loop, container.Presenter, container.view)

	return container, nil
}

// Run loads the first page and serves commands until the input ends, the
// user quits or ctx is done. At the end of input it waits for the last
// request to finish.
func (c *Container) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return c.Loop.Run(ctx)
	})

	g.Go(func() error {
		defer cancel()

		c.Loop.Execute(func() { c.Presenter.Fetch(ctx) })

		err := c.shell.Run(ctx)
		switch {
		case errors.Is(err, console.ErrQuit):
			log.Info("👋 Bye")
			return nil
		case err != nil:
			return err
		}

		return c.waitIdle(ctx)
	})

	return g.Wait()
}

func (c *Container) waitIdle(ctx context.Context) error {
	ticker := time.NewTicker(idleInterval)
	defer ticker.Stop()

	for {
		var loading bool
		err := c.Loop.Do(ctx, func() { loading = c.Presenter.IsLoading() })
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if !loading {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
