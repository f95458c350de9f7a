package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	model "auction-bid-engine/internal/models"
	"auction-bid-engine/services/bidding/helpers"
	"auction-bid-engine/utils"

	"github.com/gin-gonic/gin"
)

type BidEngineInterface interface {
	PlaceBid(ctx context.Context, auctionID, bidderID string, amount float64) (model.Bid, error)
	ListBidsForAuction(auctionID, pageToken string, pageSize int) ([]model.Bid, string, error)
	GetHighestBid(auctionID string) (model.Bid, error)
	GetBid(bidID string) (model.Bid, error)
	AggregateBidCounts(ownerID string, from, to time.Time) ([]model.DateBidCount, error)
	TotalBids(ownerID, period string) (int, error)
}

type BiddingHandler struct {
	engine BidEngineInterface
}

func NewBiddingHandler(engine BidEngineInterface) *BiddingHandler {
	return &BiddingHandler{engine: engine}
}

// PlaceBidHandler handles POST /bids
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.engine.PlaceBid(c.Request.Context(), req.AuctionID, req.BidderID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":    "PlaceBidHandler",
			"auction_id": req.AuctionID,
			"bidder_id":  req.BidderID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToBidResponse(bid), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": bid.AuctionID,
		"bidder_id":  bid.BidderID,
		"amount":     bid.Amount,
	})
}

// ListAuctionBidsHandler handles GET /auctions/:auction_id/bids
func (h *BiddingHandler) ListAuctionBidsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	pageToken := c.Query("page_token")

	pageSize := 0
	if raw := c.Query("page_size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid page_size %q", raw), "invalid page_size")
			return
		}
		pageSize = parsed
	}

	bids, next, err := h.engine.ListBidsForAuction(auctionID, pageToken, pageSize)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListAuctionBidsHandler: error retrieving bids", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	resp := helpers.BidListResponse{
		Bids:          make([]helpers.BidResponse, 0, len(bids)),
		NextPageToken: next,
	}
	for _, bid := range bids {
		resp.Bids = append(resp.Bids, helpers.ToBidResponse(bid))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("ListAuctionBidsHandler", "bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(bids),
	})
}

// GetHighestBidHandler handles GET /auctions/:auction_id/highest
func (h *BiddingHandler) GetHighestBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	bid, err := h.engine.GetHighestBid(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetHighestBidHandler: highest bid error", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponse(bid), "highest bid retrieved successfully")
	helpers.LogSuccess("GetHighestBidHandler", "highest bid retrieved successfully", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": bid.AuctionID,
		"amount":     bid.Amount,
	})
}

// GetBidHandler handles GET /bids/:bid_id
func (h *BiddingHandler) GetBidHandler(c *gin.Context) {
	bidID := c.Param("bid_id")

	bid, err := h.engine.GetBid(bidID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidHandler: error retrieving bid", map[string]any{"bid_id": bidID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponse(bid), "bid retrieved successfully")
}

// BidChartHandler handles GET /owners/:owner_id/bid-chart
func (h *BiddingHandler) BidChartHandler(c *gin.Context) {
	ownerID := c.Param("owner_id")

	from, to, err := parseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err, "invalid date range")
		return
	}

	rows, err := h.engine.AggregateBidCounts(ownerID, from, to)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("BidChartHandler: error aggregating bids", map[string]any{"owner_id": ownerID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, rows, "bid chart retrieved successfully")
	helpers.LogSuccess("BidChartHandler", "bid chart retrieved successfully", map[string]any{
		"owner_id": ownerID,
		"days":     len(rows),
	})
}

// TotalBidsHandler handles GET /owners/:owner_id/total-bids
func (h *BiddingHandler) TotalBidsHandler(c *gin.Context) {
	ownerID := c.Param("owner_id")
	period := c.DefaultQuery("period", "week")

	count, err := h.engine.TotalBids(ownerID, period)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("TotalBidsHandler: error counting bids", map[string]any{"owner_id": ownerID, "period": period, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.TotalBidsResponse{TotalBids: count}, "total bids retrieved successfully")
}

// parseDateRange interprets from/to query values as YYYY-MM-DD days, the
// range covering both days entirely. Missing values default to the last 30
// days ending today.
func parseDateRange(fromRaw, toRaw string) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -30).Truncate(24 * time.Hour)
	to := now.Truncate(24 * time.Hour).AddDate(0, 0, 1)

	if fromRaw != "" {
		parsed, err := time.Parse("2006-01-02", fromRaw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid from date %q", fromRaw)
		}
		from = parsed
	}
	if toRaw != "" {
		parsed, err := time.Parse("2006-01-02", toRaw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid to date %q", toRaw)
		}
		to = parsed.AddDate(0, 0, 1) // include the whole "to" day
	}
	return from, to, nil
}
