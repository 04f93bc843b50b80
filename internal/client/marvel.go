package client

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"superhero/directory/internal/config"
	"superhero/directory/internal/domain"
	"superhero/directory/internal/transport"

	log "github.com/sirupsen/logrus"
)

const charactersPath = "/v1/public/characters"

// SuperheroClient lists characters page by page, optionally filtered by name prefix
type SuperheroClient interface {
	Fetch(ctx context.Context, page domain.PageInfo) <-chan transport.Result[[]domain.Character]
	FetchSearch(ctx context.Context, prefix string, page domain.PageInfo) <-chan transport.Result[[]domain.Character]
	FetchMore(ctx context.Context, prefix string, page domain.PageInfo) <-chan transport.Result[[]domain.Character]
	Refresh(ctx context.Context, page domain.PageInfo) <-chan transport.Result[[]domain.Character]
}

type marvelClient struct {
	requester  transport.Requester
	baseURL    string
	publicKey  string
	privateKey string
	now        func() time.Time
}

func NewMarvelClient(cfg config.MarvelConfig, requester transport.Requester) SuperheroClient {
	return &marvelClient{
		requester:  requester,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		publicKey:  cfg.PublicKey,
		privateKey: cfg.PrivateKey,
		now:        time.Now,
	}
}

func (c *marvelClient) Fetch(ctx context.Context, page domain.PageInfo) <-chan transport.Result[[]domain.Character] {
	log.Debugf("Fetching characters at offset %d", page.Offset)
	return c.characters(ctx, "", page)
}

func (c *marvelClient) FetchSearch(ctx context.Context, prefix string, page domain.PageInfo) <-chan transport.Result[[]domain.Character] {
	log.Debugf("Searching characters starting with %q", prefix)
	return c.characters(ctx, prefix, page)
}

func (c *marvelClient) FetchMore(ctx context.Context, prefix string, page domain.PageInfo) <-chan transport.Result[[]domain.Character] {
	log.Debugf("Fetching more characters starting with %q at offset %d", prefix, page.Offset)
	return c.characters(ctx, prefix, page)
}

func (c *marvelClient) Refresh(ctx context.Context, page domain.PageInfo) <-chan transport.Result[[]domain.Character] {
	log.Debugf("Refreshing characters at offset %d", page.Offset)
	return c.characters(ctx, "", page)
}

func (c *marvelClient) characters(ctx context.Context, prefix string, page domain.PageInfo) <-chan transport.Result[[]domain.Character] {
	req := transport.Request{
		URL:        c.baseURL + charactersPath,
		Method:     transport.Get(),
		Parameters: c.parameters(prefix, page),
	}

	envelopes := transport.ResponseObject[domain.Envelope](ctx, c.requester, req)

	return transport.Map(envelopes, func(env domain.Envelope) ([]domain.Character, error) {
		return env.Characters(), nil
	})
}

func (c *marvelClient) parameters(prefix string, page domain.PageInfo) transport.Parameters {
	params := transport.Parameters{
		"offset": transport.Int(page.Offset),
		"limit":  transport.Int(page.Limit),
	}

	if prefix != "" {
		params["nameStartsWith"] = transport.String(prefix)
	}

	if c.publicKey != "" && c.privateKey != "" {
		ts := strconv.FormatInt(c.now().UnixMilli(), 10)
		params["ts"] = transport.String(ts)
		params["apikey"] = transport.String(c.publicKey)
		params["hash"] = transport.String(authHash(ts, c.privateKey, c.publicKey))
	}

	return params
}

// authHash is the Marvel server-side auth digest md5(ts+privateKey+publicKey)
func authHash(ts, privateKey, publicKey string) string {
	sum := md5.Sum([]byte(ts + privateKey + publicKey))
	return hex.EncodeToString(sum[:])
}
