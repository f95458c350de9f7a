package server

import (
	"errors"

	bidding "auction-bid-engine/internal/biddingService"
	"auction-bid-engine/internal/config"
	"auction-bid-engine/internal/metrics"
	handler "auction-bid-engine/services/bidding/handler"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var errTooManyRequests = errors.New("too many requests")

// RouterOptions carries the optional router wiring: rate limiting on bid
// placement and the Prometheus scrape endpoint.
type RouterOptions struct {
	RateLimit config.RateLimitConfig
	Gatherer  prometheus.Gatherer // nil disables /metrics
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(engine *bidding.BidEngine, opts RouterOptions) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	biddingHandler := handler.NewBiddingHandler(engine)

	bids := router.Group("/bids")
	{
		if opts.RateLimit.Enabled {
			limiter := NewRateLimiter(opts.RateLimit)
			bids.POST("", limiter.Middleware(), biddingHandler.PlaceBidHandler)
		} else {
			bids.POST("", biddingHandler.PlaceBidHandler)
		}
		bids.GET("/:bid_id", biddingHandler.GetBidHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.GET("/:auction_id/bids", biddingHandler.ListAuctionBidsHandler)
		auctions.GET("/:auction_id/highest", biddingHandler.GetHighestBidHandler)
	}

	owners := router.Group("/owners")
	{
		owners.GET("/:owner_id/bid-chart", biddingHandler.BidChartHandler)
		owners.GET("/:owner_id/total-bids", biddingHandler.TotalBidsHandler)
	}

	if opts.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler(opts.Gatherer)))
	}

	return router
}
