package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	bidding "auction-bid-engine/internal/biddingService"
	"auction-bid-engine/internal/config"
	"auction-bid-engine/internal/ledger"
	model "auction-bid-engine/internal/models"
	"auction-bid-engine/internal/registry"
	"auction-bid-engine/internal/server"

	"github.com/gin-gonic/gin"
)

// SetupTestRouterWithAuctions initializes the router with in-memory stores
// and seeds the registry with auctions.
func SetupTestRouterWithAuctions(auctions ...model.Auction) *gin.Engine {
	gin.SetMode(gin.TestMode)
	reg := registry.NewMemoryRegistry()

	for _, a := range auctions {
		reg.AddAuction(a)
	}

	engine := bidding.NewBidEngine(reg, ledger.NewMemoryLedger(), bidding.Options{})
	router := server.SetupRouter(engine, server.RouterOptions{})
	return router
}

// SetupTestRouterWithRateLimit is like SetupTestRouterWithAuctions but
// enables the bid placement rate limiter with the given budget.
func SetupTestRouterWithRateLimit(rl config.RateLimitConfig, auctions ...model.Auction) *gin.Engine {
	gin.SetMode(gin.TestMode)
	reg := registry.NewMemoryRegistry()

	for _, a := range auctions {
		reg.AddAuction(a)
	}

	engine := bidding.NewBidEngine(reg, ledger.NewMemoryLedger(), bidding.Options{})
	router := server.SetupRouter(engine, server.RouterOptions{RateLimit: rl})
	return router
}

// OpenAuction returns an auction whose bidding window is currently open.
func OpenAuction(auctionID, ownerID string, step float64) model.Auction {
	now := time.Now().UTC()
	return model.Auction{
		AuctionID:   auctionID,
		OwnerID:     ownerID,
		Title:       "title " + auctionID,
		StartTime:   now.Add(-time.Hour),
		EndTime:     now.Add(24 * time.Hour),
		BiddingStep: step,
	}
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}
