package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/courtcraft/estimates/internal/auth"
	"github.com/courtcraft/estimates/internal/http/middleware"
	"github.com/courtcraft/estimates/internal/model"
	"github.com/courtcraft/estimates/internal/service"
)

type stubService struct {
	err        error
	estimate   model.Estimate
	gotInput   model.ProjectInput
	gotCreate  service.CreateEstimateInput
	gotLimit   int
	gotRateID  int
	gotValue   float64
	principals []model.Principal
}

func (s *stubService) Calculate(_ context.Context, principal model.Principal, input model.ProjectInput) (*model.CostBreakdown, error) {
	s.principals = append(s.principals, principal)
	s.gotInput = input
	if s.err != nil {
		return nil, s.err
	}
	return &model.CostBreakdown{BaseTotal: 100, Total: 136}, nil
}

func (s *stubService) CreateEstimate(_ context.Context, input service.CreateEstimateInput) (*model.Estimate, error) {
	s.gotCreate = input
	if s.err != nil {
		return nil, s.err
	}
	return &s.estimate, nil
}

func (s *stubService) GetEstimate(_ context.Context, _ model.Principal, id uuid.UUID) (*model.Estimate, error) {
	if s.err != nil {
		return nil, s.err
	}
	if id != s.estimate.ID {
		return nil, service.ErrNotFound
	}
	return &s.estimate, nil
}

func (s *stubService) ListEstimates(_ context.Context, _ model.Principal, limit int) ([]model.EstimateSummary, error) {
	s.gotLimit = limit
	return []model.EstimateSummary{{ID: s.estimate.ID, ClientName: s.estimate.ClientName}}, s.err
}

func (s *stubService) Recalculate(ctx context.Context, principal model.Principal, id uuid.UUID) (*model.Estimate, error) {
	return s.GetEstimate(ctx, principal, id)
}

func (s *stubService) ExportExcel(ctx context.Context, principal model.Principal, id uuid.UUID) (*service.ExportResult, error) {
	if _, err := s.GetEstimate(ctx, principal, id); err != nil {
		return nil, err
	}
	return &service.ExportResult{FileName: "estimate-x.xlsx", Content: []byte("PK")}, nil
}

func (s *stubService) ExportPDF(ctx context.Context, principal model.Principal, id uuid.UUID) (*service.ExportResult, error) {
	if _, err := s.GetEstimate(ctx, principal, id); err != nil {
		return nil, err
	}
	return &service.ExportResult{FileName: "estimate-x.pdf", Content: []byte("%PDF-1.3")}, nil
}

func (s *stubService) ListRates(context.Context) ([]model.Rate, error) {
	return []model.Rate{{ID: 50, Name: "Labor Rate", Value: 65}}, s.err
}

func (s *stubService) UpdateRate(_ context.Context, _ model.Principal, id int, value float64) (*model.Rate, error) {
	s.gotRateID = id
	s.gotValue = value
	if s.err != nil {
		return nil, s.err
	}
	return &model.Rate{ID: id, Value: value}, nil
}

const testSecret = "test-secret"

func newTestRouter(svc EstimateService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := zerolog.Nop()
	handler := NewHandler(svc, log)
	return NewRouter(handler, middleware.Auth(auth.NewParser(testSecret)), "test", []string{"*"}, log)
}

func bearer(t *testing.T, role model.UserRole) string {
	t.Helper()
	token, err := auth.NewParser(testSecret).Issue(
		model.Principal{UserID: uuid.New(), Role: role},
		jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return "Bearer " + token
}

func do(t *testing.T, router *gin.Engine, method, path, authHeader string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthz_NoAuth(t *testing.T) {
	rec := do(t, newTestRouter(&stubService{}), http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestRoutes_RequireAuth(t *testing.T) {
	router := newTestRouter(&stubService{})
	for _, path := range []string{"/rates", "/estimates"} {
		if rec := do(t, router, http.MethodGet, path, "", nil); rec.Code != http.StatusUnauthorized {
			t.Errorf("GET %s status = %d, want 401", path, rec.Code)
		}
	}
}

func TestCalculate(t *testing.T) {
	svc := &stubService{}
	router := newTestRouter(svc)

	body := map[string]interface{}{
		"dimensions": map[string]interface{}{"square_footage": 2000},
		"courts":     map[string]interface{}{"apron_color": "dark-blue"},
	}
	rec := do(t, router, http.MethodPost, "/estimates/calculate", bearer(t, model.UserRoleEstimator), body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if svc.gotInput.Dimensions.SquareFootage != 2000 || svc.gotInput.Courts.ApronColor != "dark-blue" {
		t.Errorf("service got %+v", svc.gotInput)
	}
	if len(svc.principals) != 1 || svc.principals[0].Role != model.UserRoleEstimator {
		t.Errorf("principal = %+v", svc.principals)
	}

	var resp struct {
		Data model.CostBreakdown `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Total != 136 {
		t.Errorf("total = %v, want 136", resp.Data.Total)
	}
}

func TestCalculate_BindingErrors(t *testing.T) {
	router := newTestRouter(&stubService{})
	token := bearer(t, model.UserRoleAdmin)

	tests := []struct {
		name string
		body interface{}
	}{
		{"negative area", map[string]interface{}{"dimensions": map[string]interface{}{"square_footage": -5}}},
		{"bad court type", map[string]interface{}{"courts": map[string]interface{}{"basketball_court_type": "quarter"}}},
		{"wrong type", map[string]interface{}{"dimensions": "big"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := do(t, router, http.MethodPost, "/estimates/calculate", token, tt.body); rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrPermissionDenied, http.StatusForbidden},
		{service.ErrInvalidInput, http.StatusBadRequest},
		{service.ErrNotFound, http.StatusNotFound},
		{service.ErrNoRates, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			router := newTestRouter(&stubService{err: tt.err})
			rec := do(t, router, http.MethodPost, "/estimates/calculate", bearer(t, model.UserRoleViewer), map[string]interface{}{})
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestCreateEstimate(t *testing.T) {
	svc := &stubService{estimate: model.Estimate{ID: uuid.New(), ClientName: "Acme"}}
	router := newTestRouter(svc)
	token := bearer(t, model.UserRoleAdmin)

	if rec := do(t, router, http.MethodPost, "/estimates", token, map[string]interface{}{"project_name": "x"}); rec.Code != http.StatusBadRequest {
		t.Errorf("missing client_name status = %d, want 400", rec.Code)
	}

	rec := do(t, router, http.MethodPost, "/estimates", token, map[string]interface{}{
		"client_name":  "Acme",
		"project_name": "Court 1",
		"project":      map[string]interface{}{"dimensions": map[string]interface{}{"length": 60, "width": 120}},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if svc.gotCreate.ClientName != "Acme" || svc.gotCreate.Project.Dimensions.Area() != 7200 {
		t.Errorf("service got %+v", svc.gotCreate)
	}
	if svc.gotCreate.Principal.Role != model.UserRoleAdmin {
		t.Errorf("principal role = %s", svc.gotCreate.Principal.Role)
	}
}

func TestEstimateRoutes(t *testing.T) {
	id := uuid.New()
	svc := &stubService{estimate: model.Estimate{ID: id, ClientName: "Acme"}}
	router := newTestRouter(svc)
	token := bearer(t, model.UserRoleViewer)

	if rec := do(t, router, http.MethodGet, "/estimates/"+id.String(), token, nil); rec.Code != http.StatusOK {
		t.Errorf("get status = %d", rec.Code)
	}
	if rec := do(t, router, http.MethodGet, "/estimates/"+uuid.NewString(), token, nil); rec.Code != http.StatusNotFound {
		t.Errorf("get missing status = %d, want 404", rec.Code)
	}
	if rec := do(t, router, http.MethodGet, "/estimates/not-a-uuid", token, nil); rec.Code != http.StatusBadRequest {
		t.Errorf("get bad id status = %d, want 400", rec.Code)
	}
	if rec := do(t, router, http.MethodPost, "/estimates/"+id.String()+"/recalculate", token, nil); rec.Code != http.StatusOK {
		t.Errorf("recalculate status = %d", rec.Code)
	}

	rec := do(t, router, http.MethodGet, "/estimates?limit=5", token, nil)
	if rec.Code != http.StatusOK || svc.gotLimit != 5 {
		t.Errorf("list status = %d limit = %d", rec.Code, svc.gotLimit)
	}
	if rec := do(t, router, http.MethodGet, "/estimates?limit=abc", token, nil); rec.Code != http.StatusBadRequest {
		t.Errorf("list bad limit status = %d, want 400", rec.Code)
	}

	xlsx := do(t, router, http.MethodGet, "/estimates/"+id.String()+"/export", token, nil)
	if xlsx.Code != http.StatusOK || xlsx.Header().Get("Content-Type") != xlsxContentType {
		t.Errorf("export status = %d content type = %q", xlsx.Code, xlsx.Header().Get("Content-Type"))
	}
	if !strings.Contains(xlsx.Header().Get("Content-Disposition"), "estimate-x.xlsx") {
		t.Errorf("Content-Disposition = %q", xlsx.Header().Get("Content-Disposition"))
	}

	pdf := do(t, router, http.MethodGet, "/estimates/"+id.String()+"/export/pdf", token, nil)
	if pdf.Code != http.StatusOK || !strings.HasPrefix(pdf.Body.String(), "%PDF") {
		t.Errorf("pdf status = %d body = %q", pdf.Code, pdf.Body.String())
	}
}

func TestRateRoutes(t *testing.T) {
	svc := &stubService{}
	router := newTestRouter(svc)
	token := bearer(t, model.UserRoleAdmin)

	if rec := do(t, router, http.MethodGet, "/rates", bearer(t, model.UserRoleViewer), nil); rec.Code != http.StatusOK {
		t.Errorf("list rates status = %d", rec.Code)
	}

	rec := do(t, router, http.MethodPut, "/rates/21", token, map[string]interface{}{"value": 640})
	if rec.Code != http.StatusOK || svc.gotRateID != 21 || svc.gotValue != 640 {
		t.Errorf("update status = %d id = %d value = %v", rec.Code, svc.gotRateID, svc.gotValue)
	}

	zero := do(t, router, http.MethodPut, "/rates/21", token, map[string]interface{}{"value": 0})
	if zero.Code != http.StatusOK || svc.gotValue != 0 {
		t.Errorf("zero value status = %d value = %v", zero.Code, svc.gotValue)
	}

	for name, body := range map[string]interface{}{
		"missing value":  map[string]interface{}{},
		"negative value": map[string]interface{}{"value": -1},
	} {
		if rec := do(t, router, http.MethodPut, "/rates/21", token, body); rec.Code != http.StatusBadRequest {
			t.Errorf("%s status = %d, want 400", name, rec.Code)
		}
	}
	if rec := do(t, router, http.MethodPut, "/rates/abc", token, map[string]interface{}{"value": 1}); rec.Code != http.StatusBadRequest {
		t.Errorf("bad id status = %d, want 400", rec.Code)
	}
}
