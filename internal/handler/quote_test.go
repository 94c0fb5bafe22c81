package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Natim/payment-plan-generator/internal/config"
	"github.com/Natim/payment-plan-generator/internal/service"
)

func newTestHandler() *QuoteHandler {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	cfg := &config.Config{
		Business: config.BusinessConfig{
			FlatAnchorWeekday: "wednesday",
			QuarterCacheTTL:   "24h",
			MaxInstallments:   96,
		},
	}

	return NewQuoteHandler(service.NewQuoteService(nil, nil, cfg, log))
}

func postJSON(t *testing.T, handlerFunc http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	recorder := httptest.NewRecorder()
	handlerFunc(recorder, req)
	return recorder
}

func TestCreateAmortizedQuote(t *testing.T) {
	handler := newTestHandler()

	recorder := postJSON(t, handler.CreateAmortizedQuote,
		`{"purchase_amount":100000,"paid_amount":110000,"count":12,"start_date":"2024-03-05"}`)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Rate         string            `json:"rate"`
			Installments []json.RawMessage `json:"installments"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&envelope))
	assert.True(t, envelope.Success)
	assert.NotEmpty(t, envelope.Data.Rate)
	assert.Len(t, envelope.Data.Installments, 13)
}

func TestCreateAmortizedQuote_Validation(t *testing.T) {
	handler := newTestHandler()

	tests := []struct {
		name string
		body string
	}{
		{name: "missing count", body: `{"purchase_amount":100000,"paid_amount":110000,"start_date":"2024-03-05"}`},
		{name: "paid below purchase", body: `{"purchase_amount":110000,"paid_amount":100000,"count":12,"start_date":"2024-03-05"}`},
		{name: "bad date format", body: `{"purchase_amount":100000,"paid_amount":110000,"count":12,"start_date":"05/03/2024"}`},
		{name: "malformed json", body: `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := postJSON(t, handler.CreateAmortizedQuote, tt.body)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}

func TestCreateFlatQuote(t *testing.T) {
	handler := newTestHandler()

	recorder := postJSON(t, handler.CreateFlatQuote,
		`{"purchase_amount":300000,"paid_amount":312660,"count":16,"start_date":"2024-01-01"}`)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var envelope struct {
		Data struct {
			Installments []json.RawMessage `json:"installments"`
			TotalPaid    string            `json:"total_paid"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&envelope))
	assert.Len(t, envelope.Data.Installments, 16)
	assert.Equal(t, "3126.6", envelope.Data.TotalPaid)
}

func TestCheckRateCap(t *testing.T) {
	handler := newTestHandler()

	recorder := postJSON(t, handler.CheckRateCap,
		`{"count":12,"rate_bps":600,"quarter_label":"2024-T1"}`)

	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data struct {
			MaxRate string `json:"max_rate"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&envelope))
	assert.NotEqual(t, "--- bps", envelope.Data.MaxRate)
	assert.Contains(t, envelope.Data.MaxRate, "bps")
}

func TestCheckRateCap_UnknownQuarter(t *testing.T) {
	handler := newTestHandler()

	recorder := postJSON(t, handler.CheckRateCap,
		`{"count":12,"rate_bps":600,"quarter_label":"1999-T9"}`)

	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data struct {
			MaxRate string `json:"max_rate"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&envelope))
	assert.Equal(t, "--- bps", envelope.Data.MaxRate)
}
