package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-resty/resty/v2"
)

// dateLayout is the query format of the date_from and date_to filters.
const dateLayout = "2006-01-02"

type httpServerAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// The server URL may omit its scheme, in which case "http://" is assumed.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyServerURL
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidServerURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: address must include host and scheme", ErrInvalidServerURL)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	return h.token
}

// SignUp implements [ServerAdapter] over POST /auth/signup.
func (h *httpServerAdapter) SignUp(ctx context.Context, req models.SignUpRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/auth/signup", req)
}

// Login implements [ServerAdapter] over POST /auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/auth/login", req)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&auth).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	token := auth.Token
	if token == "" {
		token, err = utils.ParseAuthorizationHeader(resp.Header().Get("Authorization"))
		if err != nil {
			return models.AuthResponse{}, fmt.Errorf("%s parse token: %w", path, err)
		}
		auth.Token = token
	}

	h.SetToken(token)
	h.logger.Debug().Int64("user_id", auth.User.UserID).Str("path", path).Msg("authenticated")

	return auth, nil
}

// Logout implements [ServerAdapter] over POST /auth/logout. The local token
// is dropped even when the server rejects it.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	defer h.SetToken("")

	resp, err := h.authedRequest(ctx).Post("/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).SetResult(&user).Get("/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpServerAdapter) DeleteAccount(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/auth/me")
	if err != nil {
		return fmt.Errorf("delete account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpServerAdapter) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category

	resp, err := h.authedRequest(ctx).SetResult(&categories).Get("/categories")
	if err != nil {
		return nil, fmt.Errorf("list categories request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return categories, nil
}

func (h *httpServerAdapter) CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (models.Category, error) {
	var category models.Category

	resp, err := h.authedRequest(ctx).SetBody(req).SetResult(&category).Post("/categories")
	if err != nil {
		return models.Category{}, fmt.Errorf("create category request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Category{}, err
	}

	return category, nil
}

// ListNotes implements [ServerAdapter] over GET /notes. Empty filter fields
// are left out of the query string.
func (h *httpServerAdapter) ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	var notes []models.Note

	resp, err := h.authedRequest(ctx).
		SetQueryParamsFromValues(noteFilterQuery(filter)).
		SetResult(&notes).
		Get("/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return notes, nil
}

func noteFilterQuery(filter models.NoteFilter) url.Values {
	query := url.Values{}
	if v := strings.TrimSpace(filter.Category); v != "" {
		query.Set("category", v)
	}
	if v := strings.TrimSpace(filter.Search); v != "" {
		query.Set("search", v)
	}
	if filter.DateFrom != nil {
		query.Set("date_from", filter.DateFrom.Format(dateLayout))
	}
	if filter.DateTo != nil {
		query.Set("date_to", filter.DateTo.Format(dateLayout))
	}
	return query
}

func (h *httpServerAdapter) GetNote(ctx context.Context, noteID int64) (models.Note, error) {
	return h.noteRequest(ctx, http.MethodGet, noteID, nil)
}

func (h *httpServerAdapter) CreateNote(ctx context.Context, req models.NoteRequest) (models.Note, error) {
	return h.noteRequest(ctx, http.MethodPost, 0, req)
}

func (h *httpServerAdapter) UpdateNote(ctx context.Context, noteID int64, req models.NoteRequest) (models.Note, error) {
	return h.noteRequest(ctx, http.MethodPut, noteID, req)
}

func (h *httpServerAdapter) PatchNote(ctx context.Context, noteID int64, patch models.NotePatch) (models.Note, error) {
	return h.noteRequest(ctx, http.MethodPatch, noteID, patch)
}

// noteRequest sends method to /notes, or to /notes/{noteID} when noteID is
// set, and decodes the returned note.
func (h *httpServerAdapter) noteRequest(ctx context.Context, method string, noteID int64, body any) (models.Note, error) {
	var note models.Note

	req := h.authedRequest(ctx).SetResult(&note)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, notePath(noteID))
	if err != nil {
		return models.Note{}, fmt.Errorf("%s note request: %w", strings.ToLower(method), err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (h *httpServerAdapter) DeleteNote(ctx context.Context, noteID int64) error {
	resp, err := h.authedRequest(ctx).Delete(notePath(noteID))
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

func notePath(noteID int64) string {
	if noteID == 0 {
		return "/notes"
	}
	return "/notes/" + strconv.FormatInt(noteID, 10)
}

// ServerVersion implements [ServerAdapter] over GET /version.
func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", utils.SchemeBearer+" "+token)
	}
	return req
}
