package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-bid-engine/internal/biddingerrors"
	model "auction-bid-engine/internal/models"
	"auction-bid-engine/services/bidding/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func setupHandlerTest(t *testing.T) (*MockBidEngineInterface, *gin.Engine) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockEngine := NewMockBidEngineInterface(ctrl)
	h := NewBiddingHandler(mockEngine)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/bids", h.PlaceBidHandler)
	router.GET("/bids/:bid_id", h.GetBidHandler)
	router.GET("/auctions/:auction_id/bids", h.ListAuctionBidsHandler)
	router.GET("/auctions/:auction_id/highest", h.GetHighestBidHandler)
	router.GET("/owners/:owner_id/bid-chart", h.BidChartHandler)
	router.GET("/owners/:owner_id/total-bids", h.TotalBidsHandler)

	return mockEngine, router
}

func doRequest(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(m *MockBidEngineInterface)
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name: "success_valid_bid",
			requestBody: helpers.PlaceBidRequest{
				AuctionID: "auction1",
				BidderID:  "bidder1",
				Amount:    100,
			},
			mockSetup: func(m *MockBidEngineInterface) {
				m.EXPECT().
					PlaceBid(gomock.Any(), "auction1", "bidder1", 100.0).
					Return(model.Bid{
						BidID:     uuid.NewString(),
						AuctionID: "auction1",
						BidderID:  "bidder1",
						Amount:    100.0,
						IsActive:  true,
						CreatedAt: now,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid placed successfully",
			validateData: func(t *testing.T, data map[string]any) {
				bidID := data["bid_id"].(string)
				require.NotEmpty(t, bidID)
				_, parseErr := uuid.Parse(bidID)
				require.NoError(t, parseErr, "BidID should be a valid UUID")
				require.Equal(t, "auction1", data["auction_id"])
				require.Equal(t, "bidder1", data["bidder_id"])
				require.Equal(t, 100.0, data["amount"])
				require.Equal(t, true, data["is_active"])
				_, err := time.Parse(time.RFC3339, data["created_at"].(string))
				require.NoError(t, err)
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func(m *MockBidEngineInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_auction_id",
			requestBody: helpers.PlaceBidRequest{
				BidderID: "bidder1",
				Amount:   50,
			},
			mockSetup:      func(m *MockBidEngineInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "non_positive_amount",
			requestBody: helpers.PlaceBidRequest{
				AuctionID: "auction1",
				BidderID:  "bidder1",
				Amount:    -10,
			},
			mockSetup:      func(m *MockBidEngineInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "bid_too_low",
			requestBody: helpers.PlaceBidRequest{
				AuctionID: "auction1",
				BidderID:  "bidder1",
				Amount:    50,
			},
			mockSetup: func(m *MockBidEngineInterface) {
				m.EXPECT().
					PlaceBid(gomock.Any(), "auction1", "bidder1", 50.0).
					Return(model.Bid{}, biddingerrors.ErrBidTooLow)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "bid amount too low",
		},
		{
			name: "outside_window",
			requestBody: helpers.PlaceBidRequest{
				AuctionID: "auction1",
				BidderID:  "bidder1",
				Amount:    500,
			},
			mockSetup: func(m *MockBidEngineInterface) {
				m.EXPECT().
					PlaceBid(gomock.Any(), "auction1", "bidder1", 500.0).
					Return(model.Bid{}, biddingerrors.ErrOutsideWindow)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "auction is not open for bidding",
		},
		{
			name: "auction_not_found",
			requestBody: helpers.PlaceBidRequest{
				AuctionID: "missing",
				BidderID:  "bidder1",
				Amount:    100,
			},
			mockSetup: func(m *MockBidEngineInterface) {
				m.EXPECT().
					PlaceBid(gomock.Any(), "missing", "bidder1", 100.0).
					Return(model.Bid{}, biddingerrors.ErrAuctionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "auction not found",
		},
		{
			name: "contention",
			requestBody: helpers.PlaceBidRequest{
				AuctionID: "auction1",
				BidderID:  "bidder1",
				Amount:    100,
			},
			mockSetup: func(m *MockBidEngineInterface) {
				m.EXPECT().
					PlaceBid(gomock.Any(), "auction1", "bidder1", 100.0).
					Return(model.Bid{}, biddingerrors.ErrContention)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "auction is busy, resubmit bid",
		},
		{
			name: "ledger_write_failure",
			requestBody: helpers.PlaceBidRequest{
				AuctionID: "auction1",
				BidderID:  "bidder1",
				Amount:    100,
			},
			mockSetup: func(m *MockBidEngineInterface) {
				m.EXPECT().
					PlaceBid(gomock.Any(), "auction1", "bidder1", 100.0).
					Return(model.Bid{}, biddingerrors.ErrLedgerWrite)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			mockEngine, router := setupHandlerTest(t)
			tc.mockSetup(mockEngine)

			resp, w := doRequest(t, router, http.MethodPost, "/bids", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)
			require.Equal(t, tc.expectedMsg, resp["message"])

			if tc.validateData != nil {
				tc.validateData(t, resp["data"].(map[string]any))
			}
		})
	}
}

// Test ListAuctionBidsHandler
func TestListAuctionBidsHandler(t *testing.T) {
	now := time.Now().UTC()

	bids := []model.Bid{
		{BidID: "bid1", AuctionID: "auction1", BidderID: "bidder1", Amount: 100, IsActive: true, CreatedAt: now},
		{BidID: "bid2", AuctionID: "auction1", BidderID: "bidder2", Amount: 150, IsActive: true, CreatedAt: now.Add(time.Second)},
	}

	t.Run("page_with_next_token", func(t *testing.T) {
		mockEngine, router := setupHandlerTest(t)
		mockEngine.EXPECT().
			ListBidsForAuction("auction1", "", 2).
			Return(bids, "2", nil)

		resp, w := doRequest(t, router, http.MethodGet, "/auctions/auction1/bids?page_size=2", nil)
		require.Equal(t, http.StatusOK, w.Code)

		data := resp["data"].(map[string]any)
		require.Equal(t, "2", data["next_page_token"])
		require.Len(t, data["bids"].([]any), 2)

		first := data["bids"].([]any)[0].(map[string]any)
		require.Equal(t, "bid1", first["bid_id"])
		require.Equal(t, 100.0, first["amount"])
	})

	t.Run("invalid_page_size", func(t *testing.T) {
		_, router := setupHandlerTest(t)
		_, w := doRequest(t, router, http.MethodGet, "/auctions/auction1/bids?page_size=zero", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown_auction", func(t *testing.T) {
		mockEngine, router := setupHandlerTest(t)
		mockEngine.EXPECT().
			ListBidsForAuction("missing", "", 0).
			Return(nil, "", biddingerrors.ErrAuctionNotFound)

		_, w := doRequest(t, router, http.MethodGet, "/auctions/missing/bids", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// Test GetHighestBidHandler
func TestGetHighestBidHandler(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockEngine, router := setupHandlerTest(t)
		mockEngine.EXPECT().
			GetHighestBid("auction1").
			Return(model.Bid{BidID: "bid9", AuctionID: "auction1", BidderID: "bidder3", Amount: 420, IsActive: true, CreatedAt: time.Now().UTC()}, nil)

		resp, w := doRequest(t, router, http.MethodGet, "/auctions/auction1/highest", nil)
		require.Equal(t, http.StatusOK, w.Code)

		data := resp["data"].(map[string]any)
		require.Equal(t, "bid9", data["bid_id"])
		require.Equal(t, 420.0, data["amount"])
	})

	t.Run("no_bids", func(t *testing.T) {
		mockEngine, router := setupHandlerTest(t)
		mockEngine.EXPECT().
			GetHighestBid("auction1").
			Return(model.Bid{}, biddingerrors.ErrNoBids)

		_, w := doRequest(t, router, http.MethodGet, "/auctions/auction1/highest", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// Test GetBidHandler
func TestGetBidHandler(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockEngine, router := setupHandlerTest(t)
		mockEngine.EXPECT().
			GetBid("bid1").
			Return(model.Bid{BidID: "bid1", AuctionID: "auction1", BidderID: "bidder1", Amount: 100, IsActive: true, CreatedAt: time.Now().UTC()}, nil)

		resp, w := doRequest(t, router, http.MethodGet, "/bids/bid1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "bid1", resp["data"].(map[string]any)["bid_id"])
	})

	t.Run("not_found", func(t *testing.T) {
		mockEngine, router := setupHandlerTest(t)
		mockEngine.EXPECT().
			GetBid("missing").
			Return(model.Bid{}, biddingerrors.ErrBidNotFound)

		_, w := doRequest(t, router, http.MethodGet, "/bids/missing", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// Test BidChartHandler
func TestBidChartHandler(t *testing.T) {
	t.Run("explicit_range", func(t *testing.T) {
		mockEngine, router := setupHandlerTest(t)

		from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 8, 11, 0, 0, 0, 0, time.UTC) // "to" day included
		mockEngine.EXPECT().
			AggregateBidCounts("owner1", from, to).
			Return([]model.DateBidCount{{Date: "2026-08-02", Count: 3}}, nil)

		resp, w := doRequest(t, router, http.MethodGet, "/owners/owner1/bid-chart?from=2026-08-01&to=2026-08-10", nil)
		require.Equal(t, http.StatusOK, w.Code)

		rows := resp["data"].([]any)
		require.Len(t, rows, 1)
		row := rows[0].(map[string]any)
		require.Equal(t, "2026-08-02", row["bid_date"])
		require.Equal(t, 3.0, row["bid_count"])
	})

	t.Run("bad_from_date", func(t *testing.T) {
		_, router := setupHandlerTest(t)
		_, w := doRequest(t, router, http.MethodGet, "/owners/owner1/bid-chart?from=yesterday", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// Test TotalBidsHandler
func TestTotalBidsHandler(t *testing.T) {
	t.Run("default_period", func(t *testing.T) {
		mockEngine, router := setupHandlerTest(t)
		mockEngine.EXPECT().
			TotalBids("owner1", "week").
			Return(12, nil)

		resp, w := doRequest(t, router, http.MethodGet, "/owners/owner1/total-bids", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, 12.0, resp["data"].(map[string]any)["total_bids"])
	})

	t.Run("unknown_period", func(t *testing.T) {
		mockEngine, router := setupHandlerTest(t)
		mockEngine.EXPECT().
			TotalBids("owner1", "fortnight").
			Return(0, biddingerrors.ErrInvalidBid)

		_, w := doRequest(t, router, http.MethodGet, "/owners/owner1/total-bids?period=fortnight", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
