package bootstrap

import (
	"github.com/osse101/SpaceBot_Go/internal/config"
	"github.com/osse101/SpaceBot_Go/internal/economy"
	"github.com/osse101/SpaceBot_Go/internal/inventory"
	"github.com/osse101/SpaceBot_Go/internal/job"
	"github.com/osse101/SpaceBot_Go/internal/ledger"
	"github.com/osse101/SpaceBot_Go/internal/server"
	"github.com/osse101/SpaceBot_Go/internal/stock"
	"github.com/osse101/SpaceBot_Go/internal/trade"
	"github.com/osse101/SpaceBot_Go/internal/utils"
)

// InitializeServices builds every economy service from configuration. rnd may be nil,
// in which case each service uses the process-wide random source.
func InitializeServices(cfg *config.Config, repos *Repositories, rnd utils.Rand) server.Services {
	return server.Services{
		Ledger:    ledger.NewService(repos.Ledger, cfg.LedgerConfig(), rnd),
		Inventory: inventory.NewService(repos.Inventory, cfg.Cooldowns(), rnd),
		Shop:      economy.NewService(repos.Shop, cfg.ShopConfig()),
		Jobs:      job.NewService(repos.Job, cfg.JobConfig(), rnd),
		Stocks:    stock.NewService(repos.Stock, cfg.StockConfig(), rnd),
		Trades:    trade.NewService(repos.Trade),
	}
}
