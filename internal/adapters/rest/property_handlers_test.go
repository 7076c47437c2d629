package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"listing-service/internal/core/domain"

	"github.com/go-chi/chi/v5"
)

type fakeListUC struct {
	gotFilters domain.PropertyFilters
	gotPage    int
	gotLimit   int
	result     *domain.PageResult
	err        error
}

func (f *fakeListUC) Execute(ctx context.Context, filters domain.PropertyFilters, page, limit int) (*domain.PageResult, error) {
	f.gotFilters, f.gotPage, f.gotLimit = filters, page, limit
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeGetUC struct {
	property *domain.Property
	err      error
}

func (f *fakeGetUC) Execute(ctx context.Context, id string) (*domain.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.property, nil
}

type fakeCreateUC struct {
	got domain.Property
	err error
}

func (f *fakeCreateUC) Execute(ctx context.Context, p domain.Property) (*domain.Property, error) {
	f.got = p
	if f.err != nil {
		return nil, f.err
	}
	created := p
	created.ID = "generated-id"
	return &created, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not an envelope: %v\n%s", err, rec.Body.String())
	}
	return env
}

func TestListPropertiesParsesAndServes(t *testing.T) {
	listUC := &fakeListUC{
		result: domain.NewPageResult([]domain.Property{{ID: "p1"}}, 11, 2, 5),
	}
	h := NewPropertyHandlers(listUC, nil, nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/properties?page=2&limit=5&type=Casa&priceMax=90000", nil)
	rec := httptest.NewRecorder()
	h.ListProperties(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if listUC.gotPage != 2 || listUC.gotLimit != 5 {
		t.Fatalf("page/limit passed = %d/%d", listUC.gotPage, listUC.gotLimit)
	}
	if listUC.gotFilters.Type != "casa" {
		t.Fatalf("type filter = %q, want folded %q", listUC.gotFilters.Type, "casa")
	}
	if listUC.gotFilters.PriceMax == nil || *listUC.gotFilters.PriceMax != 90000 {
		t.Fatalf("priceMax = %v", listUC.gotFilters.PriceMax)
	}

	env := decodeEnvelope(t, rec)
	if !env.Success {
		t.Fatal("expected success envelope")
	}
	var page domain.PageResult
	if err := json.Unmarshal(env.Data, &page); err != nil {
		t.Fatalf("data is not a page result: %v", err)
	}
	if page.Total != 11 || page.TotalPages != 3 {
		t.Fatalf("total/totalPages = %d/%d, want 11/3", page.Total, page.TotalPages)
	}
}

func TestGetPropertyNotFound(t *testing.T) {
	h := NewPropertyHandlers(nil, &fakeGetUC{err: domain.ErrNotFound}, nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/properties/missing", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "missing")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rec := httptest.NewRecorder()
	h.GetProperty(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Success {
		t.Fatal("404 must use the failure envelope")
	}
}

func TestCreatePropertyValidatesPayload(t *testing.T) {
	createUC := &fakeCreateUC{}
	h := NewPropertyHandlers(nil, nil, nil, createUC, nil, nil)

	// price 0 violates the schema, handler must reject before the use case.
	body := `{"title":"X","type":"casa","location":"Brăila","price":0,"area":50}`
	req := httptest.NewRequest(http.MethodPost, "/api/properties", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateProperty(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if createUC.got.Title != "" {
		t.Fatal("invalid payload must not reach the use case")
	}
}

func TestCreatePropertyHappyPath(t *testing.T) {
	createUC := &fakeCreateUC{}
	h := NewPropertyHandlers(nil, nil, nil, createUC, nil, nil)

	body := `{"title":"Casă cu curte","type":"casa","location":"Brăila","price":85000,"area":120,"rooms":4}`
	req := httptest.NewRequest(http.MethodPost, "/api/properties", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateProperty(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201\n%s", rec.Code, rec.Body.String())
	}
	if createUC.got.Price != 85000 || createUC.got.Rooms != 4 {
		t.Fatalf("decoded payload lost fields: %+v", createUC.got)
	}

	env := decodeEnvelope(t, rec)
	var created domain.Property
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("data is not a property: %v", err)
	}
	if created.ID != "generated-id" {
		t.Fatalf("id = %q, want server-assigned", created.ID)
	}
}

func TestListPropertiesServerError(t *testing.T) {
	h := NewPropertyHandlers(&fakeListUC{err: context.DeadlineExceeded}, nil, nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/properties", nil)
	rec := httptest.NewRecorder()
	h.ListProperties(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Success || env.Message != "Server Error" {
		t.Fatalf("envelope = %+v, want generic failure", env)
	}
}
