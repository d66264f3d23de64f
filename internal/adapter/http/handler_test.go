package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inscription-api/internal/core/domain"
	"inscription-api/internal/core/port"
)

var testSecret = []byte("test-secret")

type stubRotation struct {
	resolve func(ctx context.Context) (*port.Dispatch, error)
}

func (s stubRotation) ResolveNextLink(ctx context.Context) (*port.Dispatch, error) {
	return s.resolve(ctx)
}

type stubAttribution struct {
	mu  sync.Mutex
	ids []int64
}

func (s *stubAttribution) Enqueue(linkID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = append(s.ids, linkID)
}

func (s *stubAttribution) enqueued() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int64(nil), s.ids...)
}

type stubLinks struct {
	list      func(ctx context.Context) ([]domain.MarketingLink, error)
	create    func(ctx context.Context, req port.CreateLinkReq) (*domain.MarketingLink, error)
	setActive func(ctx context.Context, id int64, active bool) error
	del       func(ctx context.Context, id int64) error
	restore   func(ctx context.Context, id int64) error
}

func (s stubLinks) ListLinks(ctx context.Context) ([]domain.MarketingLink, error) {
	return s.list(ctx)
}

func (s stubLinks) CreateLink(ctx context.Context, req port.CreateLinkReq) (*domain.MarketingLink, error) {
	return s.create(ctx, req)
}

func (s stubLinks) SetLinkActive(ctx context.Context, id int64, active bool) error {
	return s.setActive(ctx, id, active)
}

func (s stubLinks) DeleteLink(ctx context.Context, id int64) error {
	return s.del(ctx, id)
}

func (s stubLinks) RestoreLink(ctx context.Context, id int64) error {
	return s.restore(ctx, id)
}

type stubClicks struct {
	record  func(ctx context.Context, t domain.EventType) error
	history func(ctx context.Context, limit int) ([]port.ClickHistoryItem, error)
	stats   func(ctx context.Context, req port.StatsReq) (*port.StatsResp, error)
}

func (s stubClicks) RecordClick(ctx context.Context, t domain.EventType) error {
	return s.record(ctx, t)
}

func (s stubClicks) ClickHistory(ctx context.Context, limit int) ([]port.ClickHistoryItem, error) {
	return s.history(ctx, limit)
}

func (s stubClicks) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	return s.stats(ctx, req)
}

func newTestHandler(svc Services) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(svc, Options{
		FallbackURL: "https://example.com/fallback",
		JWTSecret:   testSecret,
		AdminRole:   "admin",
	}, logger).Router()
}

func signToken(t *testing.T, role string, secret []byte, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AdminClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "ops@example.com",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	s, err := token.SignedString(secret)
	require.NoError(t, err)
	return s
}

func adminToken(t *testing.T) string {
	return signToken(t, "admin", testSecret, time.Now().Add(time.Hour))
}

func do(t *testing.T, h http.Handler, method, target, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestCurrentLink(t *testing.T) {
	t.Run("serves the next link and schedules attribution", func(t *testing.T) {
		attr := &stubAttribution{}
		h := newTestHandler(Services{
			Rotation: stubRotation{resolve: func(context.Context) (*port.Dispatch, error) {
				return &port.Dispatch{LinkID: 7, DestinationURL: "https://example.com/7"}, nil
			}},
			Attribution: attr,
		})

		rec := do(t, h, http.MethodGet, "/api/v1/current-link", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		got := decode[map[string]any](t, rec)
		assert.Equal(t, "https://example.com/7", got["destinationUrl"])
		assert.EqualValues(t, 7, got["linkId"])
		assert.Equal(t, []int64{7}, attr.enqueued())
	})

	t.Run("no eligible link answers with the fallback", func(t *testing.T) {
		attr := &stubAttribution{}
		h := newTestHandler(Services{
			Rotation: stubRotation{resolve: func(context.Context) (*port.Dispatch, error) {
				return nil, port.ErrNoEligibleLink
			}},
			Attribution: attr,
		})

		rec := do(t, h, http.MethodGet, "/api/v1/current-link", "", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		got := decode[map[string]any](t, rec)
		assert.Equal(t, map[string]any{"destinationUrl": "https://example.com/fallback"}, got)
		assert.Empty(t, attr.enqueued())
	})

	t.Run("storage failure answers 500", func(t *testing.T) {
		attr := &stubAttribution{}
		h := newTestHandler(Services{
			Rotation: stubRotation{resolve: func(context.Context) (*port.Dispatch, error) {
				return nil, fmt.Errorf("list eligible links: %w", errors.New("connection refused"))
			}},
			Attribution: attr,
		})

		rec := do(t, h, http.MethodGet, "/api/v1/current-link", "", "")

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		got := decode[messageResponse](t, rec)
		assert.Equal(t, "failed to get current link", got.Message)
		assert.NotContains(t, rec.Body.String(), "connection refused")
		assert.Empty(t, attr.enqueued())
	})
}

func TestHealthz(t *testing.T) {
	rec := do(t, newTestHandler(Services{}), http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[messageResponse](t, rec).Message)
}

func TestRequireAdmin(t *testing.T) {
	svc := Services{Links: stubLinks{list: func(context.Context) ([]domain.MarketingLink, error) {
		return nil, nil
	}}}
	h := newTestHandler(svc)

	tests := []struct {
		name  string
		token string
		want  int
	}{
		{name: "no token", token: "", want: http.StatusUnauthorized},
		{name: "garbage", token: "not-a-jwt", want: http.StatusUnauthorized},
		{name: "wrong secret", token: signToken(t, "admin", []byte("other"), time.Now().Add(time.Hour)), want: http.StatusUnauthorized},
		{name: "expired", token: signToken(t, "admin", testSecret, time.Now().Add(-time.Minute)), want: http.StatusUnauthorized},
		{name: "wrong role", token: signToken(t, "viewer", testSecret, time.Now().Add(time.Hour)), want: http.StatusForbidden},
		{name: "admin", token: adminToken(t), want: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, "/api/v1/links", "", tt.token)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRequireAdminRejectsOtherAlgorithms(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, AdminClaims{
		Role:             "admin",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})
	raw, err := token.SignedString(testSecret)
	require.NoError(t, err)

	rec := do(t, newTestHandler(Services{}), http.MethodGet, "/api/v1/links", "", raw)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListLinks(t *testing.T) {
	future := time.Now().Add(time.Hour)
	code := "amb-1"
	links := []domain.MarketingLink{
		{ID: 2, Kind: domain.LinkKindPersonalized, DestinationURL: "https://example.com/2", ShortCode: &code, Active: true, ExpiresAt: &future},
		{ID: 1, Kind: domain.LinkKindDefault, DestinationURL: "https://example.com/1", Active: true, Deleted: true},
	}
	h := newTestHandler(Services{Links: stubLinks{list: func(context.Context) ([]domain.MarketingLink, error) {
		return links, nil
	}}})

	rec := do(t, h, http.MethodGet, "/api/v1/links", "", adminToken(t))

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[[]linkResponse](t, rec)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.True(t, got[0].Eligible)
	assert.Equal(t, "amb-1", *got[0].ShortCode)
	assert.False(t, got[1].Eligible, "deleted links are not eligible")
}

func TestCreateLink(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		var got port.CreateLinkReq
		h := newTestHandler(Services{Links: stubLinks{create: func(_ context.Context, req port.CreateLinkReq) (*domain.MarketingLink, error) {
			got = req
			code := req.ShortCode
			return &domain.MarketingLink{
				ID: 11, Kind: req.Kind, DestinationURL: req.DestinationURL, ShortCode: &code,
				Ambassador: req.Ambassador, Active: true, CreatedAt: time.Now(),
			}, nil
		}}})

		body := `{"kind":"personalized","destinationUrl":"https://example.com/a","shortCode":"amb-9","ambassadorFirstName":"Awa"}`
		rec := do(t, h, http.MethodPost, "/api/v1/links", body, adminToken(t))

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, domain.LinkKindPersonalized, got.Kind)
		assert.Equal(t, "amb-9", got.ShortCode)
		require.NotNil(t, got.Ambassador.FirstName)
		assert.Equal(t, "Awa", *got.Ambassador.FirstName)
		resp := decode[linkResponse](t, rec)
		assert.Equal(t, int64(11), resp.ID)
		assert.True(t, resp.Eligible)
	})

	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{name: "malformed json", body: `{`, want: http.StatusBadRequest},
		{name: "validation", body: `{"destinationUrl":"ftp://x"}`, err: fmt.Errorf("%w: bad scheme", port.ErrInvalidInput), want: http.StatusBadRequest},
		{name: "duplicate short code", body: `{"destinationUrl":"https://x.io","shortCode":"a"}`, err: fmt.Errorf("%w: short code taken", port.ErrConflict), want: http.StatusConflict},
		{name: "storage", body: `{"destinationUrl":"https://x.io","shortCode":"a"}`, err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(Services{Links: stubLinks{create: func(context.Context, port.CreateLinkReq) (*domain.MarketingLink, error) {
				return nil, tt.err
			}}})
			rec := do(t, h, http.MethodPost, "/api/v1/links", tt.body, adminToken(t))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestLinkLifecycleRoutes(t *testing.T) {
	type call struct {
		op     string
		id     int64
		active bool
	}
	var calls []call
	links := stubLinks{
		setActive: func(_ context.Context, id int64, active bool) error {
			calls = append(calls, call{op: "active", id: id, active: active})
			return nil
		},
		del: func(_ context.Context, id int64) error {
			if id == 404 {
				return fmt.Errorf("link %d: %w", id, port.ErrNotFound)
			}
			calls = append(calls, call{op: "delete", id: id})
			return nil
		},
		restore: func(_ context.Context, id int64) error {
			calls = append(calls, call{op: "restore", id: id})
			return nil
		},
	}
	h := newTestHandler(Services{Links: links})
	token := adminToken(t)

	assert.Equal(t, http.StatusNoContent, do(t, h, http.MethodPost, "/api/v1/links/3/activate", "", token).Code)
	assert.Equal(t, http.StatusNoContent, do(t, h, http.MethodPost, "/api/v1/links/3/deactivate", "", token).Code)
	assert.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, "/api/v1/links/3", "", token).Code)
	assert.Equal(t, http.StatusNoContent, do(t, h, http.MethodPost, "/api/v1/links/3/restore", "", token).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodDelete, "/api/v1/links/404", "", token).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodDelete, "/api/v1/links/abc", "", token).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/api/v1/links/0/activate", "", token).Code)

	assert.Equal(t, []call{
		{op: "active", id: 3, active: true},
		{op: "active", id: 3, active: false},
		{op: "delete", id: 3},
		{op: "restore", id: 3},
	}, calls)
}

func TestRecordClick(t *testing.T) {
	var got []domain.EventType
	clicks := stubClicks{record: func(_ context.Context, et domain.EventType) error {
		if !et.Valid() || et == domain.EventLinkClick {
			return fmt.Errorf("%w: unknown click type %q", port.ErrInvalidInput, et)
		}
		got = append(got, et)
		return nil
	}}
	h := newTestHandler(Services{Clicks: clicks})

	rec := do(t, h, http.MethodPost, "/api/v1/click-events", `{"clickType":"form_submitted"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "click recorded", decode[messageResponse](t, rec).Message)
	assert.Equal(t, []domain.EventType{domain.EventFormSubmitted}, got)

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/api/v1/click-events", `{"clickType":"nope"}`, "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/api/v1/click-events", `{}`, "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/api/v1/click-events", `not json`, "").Code)
}

func TestClickHistory(t *testing.T) {
	var gotLimit int
	id := int64(4)
	url := "https://example.com/4"
	kind := domain.LinkKindPersonalized
	first := "Marie"
	clicks := stubClicks{history: func(_ context.Context, limit int) ([]port.ClickHistoryItem, error) {
		gotLimit = limit
		return []port.ClickHistoryItem{
			{Type: domain.EventLinkClick, CreatedAt: time.Now(), LinkID: &id, LinkURL: &url, LinkKind: &kind, Ambassador: domain.Ambassador{FirstName: &first}},
			{Type: domain.EventPaymentDone, CreatedAt: time.Now()},
		}, nil
	}}
	h := newTestHandler(Services{Clicks: clicks})

	rec := do(t, h, http.MethodGet, "/api/v1/click-events/history?limit=20", "", adminToken(t))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 20, gotLimit)
	items := decode[[]historyItemResponse](t, rec)
	require.Len(t, items, 2)
	assert.Equal(t, "link_click", items[0].ClickType)
	require.NotNil(t, items[0].LinkKind)
	assert.Equal(t, "personalized", *items[0].LinkKind)
	assert.Nil(t, items[1].LinkID)

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/v1/click-events/history?limit=-1", "", adminToken(t)).Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, h, http.MethodGet, "/api/v1/click-events/history", "", "").Code)
}

func TestStatsOverview(t *testing.T) {
	var got port.StatsReq
	clicks := stubClicks{stats: func(_ context.Context, req port.StatsReq) (*port.StatsResp, error) {
		got = req
		if req.From.After(req.To) && !req.To.IsZero() {
			return nil, fmt.Errorf("%w: 'from' is after 'to'", port.ErrInvalidInput)
		}
		return &port.StatsResp{
			From:   req.From,
			To:     req.To,
			Counts: map[domain.EventType]int64{domain.EventLinkClick: 5, domain.EventPaymentDone: 1},
			Total:  6,
		}, nil
	}}
	h := newTestHandler(Services{Clicks: clicks})
	token := adminToken(t)

	rec := do(t, h, http.MethodGet, "/api/v1/stats/overview?from=2026-01-01T00:00:00Z&to=2026-01-02T00:00:00Z&link_id=3", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), got.From)
	require.NotNil(t, got.LinkID)
	assert.Equal(t, int64(3), *got.LinkID)
	resp := decode[statsResponse](t, rec)
	assert.Equal(t, int64(6), resp.Total)
	assert.Equal(t, int64(5), resp.Counts["link_click"])

	tests := map[string]string{
		"bad from":      "/api/v1/stats/overview?from=yesterday",
		"bad to":        "/api/v1/stats/overview?to=1700000000",
		"bad link":      "/api/v1/stats/overview?link_id=x",
		"inverted span": "/api/v1/stats/overview?from=2026-01-02T00:00:00Z&to=2026-01-01T00:00:00Z",
	}
	for name, target := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, target, "", token).Code)
		})
	}
}
