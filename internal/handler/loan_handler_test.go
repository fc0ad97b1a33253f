package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/arvhie/payoff/payoff-backend/internal/domain"
	"github.com/arvhie/payoff/payoff-backend/internal/service"
	"github.com/arvhie/payoff/payoff-backend/internal/testutil"
)

func testDefaultTerms() domain.LoanTerms {
	return domain.LoanTerms{
		Principal:         decimal.NewFromInt(1000000),
		TenureMonths:      12,
		AnnualRatePercent: decimal.NewFromInt(10),
	}
}

func newLoanHandler() (*LoanHandler, *testutil.MockPaymentRecordRepository) {
	repo := testutil.NewMockPaymentRecordRepository()
	ledgerService := service.NewPaymentLedgerService(repo)
	scheduleService := service.NewScheduleService(nil)
	return NewLoanHandler(scheduleService, ledgerService, testDefaultTerms()), repo
}

func TestComputeEmi_DefaultTerms(t *testing.T) {
	e := echo.New()
	handler, _ := newLoanHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/loan/emi", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ComputeEmi(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response EmiResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Emi != "87916" {
		t.Errorf("Expected EMI 87916, got %s", response.Emi)
	}
}

func TestComputeEmi_RequestOverridesTerms(t *testing.T) {
	e := echo.New()
	handler, _ := newLoanHandler()

	body := `{"principal":"1200","annualRate":"0","tenureMonths":12}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/loan/emi", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ComputeEmi(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response EmiResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Emi != "100" {
		t.Errorf("Expected EMI 100, got %s", response.Emi)
	}
}

func TestComputeEmi_InvalidPrincipal(t *testing.T) {
	e := echo.New()
	handler, _ := newLoanHandler()

	body := `{"principal":"-5"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/loan/emi", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ComputeEmi(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestBuildSchedule_UsesStoredLedger(t *testing.T) {
	e := echo.New()
	handler, repo := newLoanHandler()

	repo.Records[6] = &domain.PaymentRecord{
		Month:      6,
		Prepayment: decimal.Zero,
		Lumpsum:    decimal.NewFromInt(200000),
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/loan/schedule", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.BuildSchedule(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var schedule []*domain.ScheduleEntry
	if err := json.Unmarshal(rec.Body.Bytes(), &schedule); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(schedule) == 0 || len(schedule) >= 12 {
		t.Fatalf("Expected lumpsum to shorten schedule below 12 months, got %d", len(schedule))
	}
	if !schedule[len(schedule)-1].EndingBalance.IsZero() {
		t.Errorf("Expected final balance zero, got %s", schedule[len(schedule)-1].EndingBalance.String())
	}
}

func TestComputeMetrics_Success(t *testing.T) {
	e := echo.New()
	handler, repo := newLoanHandler()

	repo.Records[6] = &domain.PaymentRecord{
		Month:      6,
		Prepayment: decimal.Zero,
		Lumpsum:    decimal.NewFromInt(200000),
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/loan/metrics", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ComputeMetrics(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response MetricsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.StandardEmi != "87916" {
		t.Errorf("Expected standard EMI 87916, got %s", response.StandardEmi)
	}
	if response.Metrics.MonthsSaved <= 0 {
		t.Errorf("Expected months saved, got %d", response.Metrics.MonthsSaved)
	}
	if !response.Metrics.InterestSaved.IsPositive() {
		t.Errorf("Expected positive interest saved, got %s", response.Metrics.InterestSaved.String())
	}
}

func TestComputeMetrics_InvalidTenure(t *testing.T) {
	e := echo.New()
	handler, _ := newLoanHandler()

	body := `{"tenureMonths":-3}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/loan/metrics", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ComputeMetrics(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}
