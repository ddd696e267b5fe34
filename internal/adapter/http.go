package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *resty.Client

	routePrefix string
	token       string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs a resty implementation of [ServerAdapter].
// It normalises and validates cfg.ServerAddress, applies cfg.RequestTimeout
// to every call and preloads cfg.Token when it is set.
//
// Returns an error if cfg.ServerAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.Client, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	a := &httpServerAdapter{
		client:      client,
		routePrefix: normalizeRoutePrefix(cfg.RoutePrefix),
		logger:      logger,
	}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func normalizeRoutePrefix(prefix string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return ""
	}
	return "/" + prefix
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. POST {prefix}/auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&user).
		Post(h.route("/auth/register"))
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	h.logger.Debug().Int64("user_id", user.UserID).Msg("user registered")
	return user, nil
}

// Login implements [ServerAdapter]. POST {prefix}/auth/login. The returned
// access token is stored for subsequent calls.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.TokenResponse, error) {
	var token models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&token).
		Post(h.route("/auth/login"))
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}
	if token.AccessToken == "" {
		return models.TokenResponse{}, fmt.Errorf("login: empty access token in response")
	}

	h.SetToken(token.AccessToken)
	return token, nil
}

// CreateNote implements [ServerAdapter]. POST {prefix}/notes/.
func (h *httpServerAdapter) CreateNote(ctx context.Context, note models.NoteCreate) (models.Note, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Note{}, err
	}

	var created models.Note
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(note).
		SetResult(&created).
		Post(h.route("/notes/"))
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return created, nil
}

// ListNotes implements [ServerAdapter]. GET {prefix}/notes/?skip=&limit=.
func (h *httpServerAdapter) ListNotes(ctx context.Context, skip, limit uint64) ([]models.Note, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	notes := make([]models.Note, 0)
	resp, err := req.
		SetQueryParam("skip", strconv.FormatUint(skip, 10)).
		SetQueryParam("limit", strconv.FormatUint(limit, 10)).
		SetResult(&notes).
		Get(h.route("/notes/"))
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return notes, nil
}

// GetNote implements [ServerAdapter]. GET {prefix}/notes/{id}.
func (h *httpServerAdapter) GetNote(ctx context.Context, noteID int64) (models.Note, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Note{}, err
	}

	var note models.Note
	resp, err := req.
		SetResult(&note).
		Get(h.noteRoute(noteID))
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// UpdateNote implements [ServerAdapter]. PUT {prefix}/notes/{id}.
func (h *httpServerAdapter) UpdateNote(ctx context.Context, noteID int64, update models.NoteUpdate) (models.Note, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Note{}, err
	}

	var note models.Note
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&note).
		Put(h.noteRoute(noteID))
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// DeleteNote implements [ServerAdapter]. DELETE {prefix}/notes/{id}.
func (h *httpServerAdapter) DeleteNote(ctx context.Context, noteID int64) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Delete(h.noteRoute(noteID))
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

// Health implements [ServerAdapter]. GET /health, never prefixed.
func (h *httpServerAdapter) Health(ctx context.Context) error {
	var health models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if health.Status != "ok" {
		return fmt.Errorf("unexpected health status %q", health.Status)
	}

	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}

func (h *httpServerAdapter) route(path string) string {
	return h.routePrefix + path
}

func (h *httpServerAdapter) noteRoute(noteID int64) string {
	return h.route("/notes/" + strconv.FormatInt(noteID, 10))
}
