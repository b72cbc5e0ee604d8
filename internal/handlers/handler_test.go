package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	"github.com/SscSPs/backoffice_ledger/internal/core/services"
	"github.com/SscSPs/backoffice_ledger/internal/dto"
	"github.com/SscSPs/backoffice_ledger/internal/handlers"
	"github.com/SscSPs/backoffice_ledger/internal/platform/config"
	"github.com/SscSPs/backoffice_ledger/internal/platform/lock"
	"github.com/SscSPs/backoffice_ledger/internal/repositories/memory"
	"github.com/SscSPs/backoffice_ledger/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const (
	testSecret = "test-secret-key-that-is-long-enough"
	testIssuer = "ledger-test"
	testWP     = "wp-1"
)

type LedgerAPITestSuite struct {
	suite.Suite
	router *gin.Engine
	token  string
}

func (s *LedgerAPITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		IsProduction:       true,
		JWTSecret:          testSecret,
		JWTIssuer:          testIssuer,
		CORSAllowedOrigins: []string{"http://localhost:3000"},
		CurrencyPrecision:  2,
		CancellationPolicies: domain.CancellationPolicies{
			domain.DocumentManual: domain.CancelInPlaceRevertLedger,
		},
	}
	store := memory.NewStore()
	container := services.NewServiceContainer(cfg, store.Provider(), lock.NopManager{})

	s.router = gin.New()
	handlers.RegisterRoutes(s.router, cfg, container, nil, map[string]handlers.HealthCheck{
		"database": func(context.Context) error { return nil },
	})

	token, err := utils.GenerateJWT("user-1", testSecret, time.Hour, testIssuer)
	s.Require().NoError(err)
	s.token = token
}

func (s *LedgerAPITestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, "/api/v1/workplaces/"+testWP+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *LedgerAPITestSuite) createAccount(code, name string, accountType domain.AccountType, parentID *string) dto.AccountResponse {
	w := s.do(http.MethodPost, "/accounts", dto.CreateAccountRequest{Code: code, Name: name, AccountType: accountType, ParentAccountID: parentID})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var acc dto.AccountResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &acc))
	return acc
}

func (s *LedgerAPITestSuite) createDraft(lines ...dto.JournalLineRequest) dto.JournalEntryResponse {
	w := s.do(http.MethodPost, "/entries", dto.CreateJournalEntryRequest{
		EntryDate:    time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
		Description:  "Cash sale",
		CurrencyCode: "EUR",
		Lines:        lines,
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var entry dto.JournalEntryResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &entry))
	return entry
}

func debit(accountID string, amount int64) dto.JournalLineRequest {
	return dto.JournalLineRequest{AccountID: accountID, Debit: decimal.NewFromInt(amount)}
}

func credit(accountID string, amount int64) dto.JournalLineRequest {
	return dto.JournalLineRequest{AccountID: accountID, Credit: decimal.NewFromInt(amount)}
}

func (s *LedgerAPITestSuite) TestPostLifecycle() {
	cash := s.createAccount("1010", "Cash", domain.Asset, nil)
	revenue := s.createAccount("7000", "Sales", domain.Income, nil)

	draft := s.createDraft(debit(cash.AccountID, 100), credit(revenue.AccountID, 100))
	s.Equal(domain.Draft, draft.Status)
	s.Empty(draft.Number)

	w := s.do(http.MethodPost, "/entries/"+draft.EntryID+"/post", nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var posted dto.JournalEntryResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &posted))
	s.Equal(domain.Posted, posted.Status)
	s.Equal("GEN/2026-10/00001", posted.Number)

	w = s.do(http.MethodGet, "/accounts/"+cash.AccountID+"/balance", nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var balance dto.AccountBalanceResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &balance))
	s.True(balance.Balance.Equal(decimal.NewFromInt(100)), balance.Balance.String())

	// Posting again is an illegal transition.
	w = s.do(http.MethodPost, "/entries/"+draft.EntryID+"/post", nil)
	s.Equal(http.StatusConflict, w.Code)

	w = s.do(http.MethodPost, "/entries/"+draft.EntryID+"/cancel", dto.CancelEntryRequest{Reason: "wrong customer"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/accounts/"+cash.AccountID, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var after dto.AccountResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &after))
	s.True(after.Balance.IsZero(), "cancel reverted the ledger, got %s", after.Balance)
}

func (s *LedgerAPITestSuite) TestPostRejectsNonLeafAccount() {
	group := s.createAccount("1000", "Current assets", domain.Asset, nil)
	s.createAccount("1010", "Cash", domain.Asset, &group.AccountID)
	revenue := s.createAccount("7000", "Sales", domain.Income, nil)

	draft := s.createDraft(debit(group.AccountID, 50), credit(revenue.AccountID, 50))

	w := s.do(http.MethodPost, "/entries/"+draft.EntryID+"/post", nil)
	s.Require().Equal(http.StatusBadRequest, w.Code, w.Body.String())

	var body struct {
		Error string `json:"error"`
		Line  struct {
			Index  int    `json:"index"`
			Reason string `json:"reason"`
		} `json:"line"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal(0, body.Line.Index)
	s.Equal(domain.ReasonNonLeafAccount, body.Line.Reason)

	w = s.do(http.MethodGet, "/entries/"+draft.EntryID, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var entry dto.JournalEntryResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &entry))
	s.Equal(domain.Draft, entry.Status)
}

func (s *LedgerAPITestSuite) TestUnbalancedPostIsBadRequest() {
	cash := s.createAccount("1010", "Cash", domain.Asset, nil)
	revenue := s.createAccount("7000", "Sales", domain.Income, nil)
	draft := s.createDraft(debit(cash.AccountID, 100), credit(revenue.AccountID, 59))

	w := s.do(http.MethodPost, "/entries/"+draft.EntryID+"/post", nil)
	s.Equal(http.StatusBadRequest, w.Code, w.Body.String())
}

func (s *LedgerAPITestSuite) TestReverseReturnsMirror() {
	cash := s.createAccount("1010", "Cash", domain.Asset, nil)
	revenue := s.createAccount("7000", "Sales", domain.Income, nil)
	draft := s.createDraft(debit(cash.AccountID, 80), credit(revenue.AccountID, 80))
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, "/entries/"+draft.EntryID+"/post", nil).Code)

	w := s.do(http.MethodPost, "/entries/"+draft.EntryID+"/reverse", dto.ReverseEntryRequest{Reason: "duplicate"})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var mirror dto.JournalEntryResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &mirror))
	s.Require().NotNil(mirror.ReversalOfID)
	s.Equal(draft.EntryID, *mirror.ReversalOfID)
	s.Require().Len(mirror.Lines, 2)
	s.True(mirror.Lines[0].Credit.Equal(decimal.NewFromInt(80)))

	w = s.do(http.MethodPost, "/entries/"+draft.EntryID+"/reverse", dto.ReverseEntryRequest{Reason: "again"})
	s.Equal(http.StatusConflict, w.Code)
}

func (s *LedgerAPITestSuite) TestMissingTokenIsUnauthorized() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/workplaces/"+testWP+"/accounts", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *LedgerAPITestSuite) TestUnknownEntryIsNotFound() {
	w := s.do(http.MethodGet, "/entries/does-not-exist", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *LedgerAPITestSuite) TestResolveWithoutConfiguration() {
	w := s.do(http.MethodPost, "/account-resolution", dto.ResolveAccountRequest{Purpose: domain.PurposeSaleIncome})
	s.Equal(http.StatusUnprocessableEntity, w.Code, w.Body.String())
}

func (s *LedgerAPITestSuite) TestHealth() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"status":"ok","database":"ok"}`, w.Body.String())
}

func TestLedgerAPI(t *testing.T) {
	suite.Run(t, new(LedgerAPITestSuite))
}

func TestHealth_Degraded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.Config{IsProduction: true, JWTSecret: testSecret, JWTIssuer: testIssuer}
	container := services.NewServiceContainer(cfg, memory.NewStore().Provider(), lock.NopManager{})
	handlers.RegisterRoutes(r, cfg, container, nil, map[string]handlers.HealthCheck{
		"redis": func(context.Context) error { return fmt.Errorf("dial: %w", errors.New("refused")) },
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}
