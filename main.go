package main

import (
	"fmt"
	"os"
	"time"

	"auction-bid-engine/internal/audit"
	bidding "auction-bid-engine/internal/biddingService"
	"auction-bid-engine/internal/config"
	"auction-bid-engine/internal/ledger"
	"auction-bid-engine/internal/metrics"
	model "auction-bid-engine/internal/models"
	"auction-bid-engine/internal/registry"
	"auction-bid-engine/internal/server"
	"auction-bid-engine/utils"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	reg := registry.NewMemoryRegistry()
	prepopulateAuctions(reg)

	led, closeLedger, err := openLedger(cfg.Ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open ledger: %v\n", err)
		os.Exit(1)
	}
	defer closeLedger()

	promRegistry := prometheus.NewRegistry()
	collector := metrics.NewCollector(promRegistry)

	engine := bidding.NewBidEngine(reg, led, bidding.Options{
		MaxCommitRetries: cfg.Engine.MaxCommitRetries,
		Metrics:          collector,
	})

	if cfg.Audit.Enabled {
		auditor := audit.NewAuditor(reg, led, collector)
		spec := fmt.Sprintf("@every %s", cfg.Audit.Interval)
		if err := auditor.Start(spec); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to start auditor: %v\n", err)
			os.Exit(1)
		}
		defer auditor.Stop()
	}

	router := server.SetupRouter(engine, server.RouterOptions{
		RateLimit: cfg.RateLimit,
		Gatherer:  promRegistry,
	})

	utils.Info("Starting bid engine server", map[string]any{"addr": cfg.Addr(), "ledger": cfg.Ledger.Driver})
	if err := router.Run(cfg.Addr()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// openLedger builds the configured BidLedger backend
func openLedger(cfg config.LedgerConfig) (ledger.BidLedger, func(), error) {
	switch cfg.Driver {
	case "bolt":
		l, err := ledger.NewBoltLedger(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return l, func() { l.Close() }, nil
	default:
		return ledger.NewMemoryLedger(), func() {}, nil
	}
}

// prepopulateAuctions adds sample auctions to the in-memory registry.
// Auction creation belongs to the surrounding catalog system.
func prepopulateAuctions(reg *registry.MemoryRegistry) {
	now := time.Now().UTC()
	auctions := []model.Auction{
		{AuctionID: "auction1", OwnerID: "owner1", Title: "title1", StartTime: now.Add(-time.Hour), EndTime: now.Add(24 * time.Hour), BiddingStep: 10},
		{AuctionID: "auction2", OwnerID: "owner1", Title: "title2", StartTime: now.Add(-time.Hour), EndTime: now.Add(48 * time.Hour), BiddingStep: 25},
		{AuctionID: "auction3", OwnerID: "owner2", Title: "title3", StartTime: now.Add(time.Hour), EndTime: now.Add(72 * time.Hour), BiddingStep: 5},
	}

	for _, a := range auctions {
		reg.AddAuction(a)
	}
}
