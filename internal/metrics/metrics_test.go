package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/SpaceBot_Go/internal/domain"
)

func TestRecordOperation_LabelsByKind(t *testing.T) {
	before := testutil.ToFloat64(EconomyOperations.WithLabelValues("test_buy", string(domain.KindInsufficient)))

	RecordOperation("test_buy", fmt.Errorf("%w: need 10", domain.ErrInsufficientFunds))
	RecordOperation("test_buy", nil)
	RecordOperation("test_buy", errors.New("connection reset"))

	assert.Equal(t, before+1, testutil.ToFloat64(EconomyOperations.WithLabelValues("test_buy", string(domain.KindInsufficient))))
	assert.Equal(t, float64(1), testutil.ToFloat64(EconomyOperations.WithLabelValues("test_buy", OutcomeSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(EconomyOperations.WithLabelValues("test_buy", OutcomeFault)))
}

func TestRecordMintAndBurn_IgnoreNonPositive(t *testing.T) {
	RecordMint("test_source", 0)
	RecordMint("test_source", 250)
	RecordBurn("test_sink", -5)
	RecordBurn("test_sink", 40)

	assert.Equal(t, float64(250), testutil.ToFloat64(CreditsMinted.WithLabelValues("test_source")))
	assert.Equal(t, float64(40), testutil.ToFloat64(CreditsBurned.WithLabelValues("test_sink")))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/trades/{tradeID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/trades/17", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, float64(1), testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/trades/{tradeID}", "418")))
}
