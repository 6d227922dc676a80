package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/osse101/SpaceBot_Go/internal/bootstrap"
	"github.com/osse101/SpaceBot_Go/internal/config"
	"github.com/osse101/SpaceBot_Go/internal/database"
	"github.com/osse101/SpaceBot_Go/internal/domain"
	"github.com/osse101/SpaceBot_Go/internal/utils"
)

func newMigrateCmd() *cobra.Command {
	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the PostgreSQL schema",
	}

	migrate.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply every pending migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				pool, err := openPostgres(cmd.Context())
				if err != nil {
					return err
				}
				defer pool.Close()
				if err := database.Migrate(cmd.Context(), pool); err != nil {
					return err
				}
				printSuccess(cmd.OutOrStdout(), "schema is up to date")
				return nil
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				pool, err := openPostgres(cmd.Context())
				if err != nil {
					return err
				}
				defer pool.Close()
				if err := database.MigrateDown(cmd.Context(), pool); err != nil {
					return err
				}
				printSuccess(cmd.OutOrStdout(), "rolled back one migration")
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Print the applied schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				pool, err := openPostgres(cmd.Context())
				if err != nil {
					return err
				}
				defer pool.Close()
				version, err := database.SchemaVersion(cmd.Context(), pool)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "schema version %s\n", accent.Sprint(version))
				return nil
			},
		},
	)
	return migrate
}

func newSeedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Add catalog items, jobs and stocks from a TOML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			if err := bootstrap.SyncCatalog(cmd.Context(), file, a.services); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "seeded catalog from %s", file)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", config.ConfigPathCatalog, "catalog file")
	return cmd
}

func newItemCmd() *cobra.Command {
	item := &cobra.Command{
		Use:   "item",
		Short: "Shop catalog commands",
	}
	item.AddCommand(&cobra.Command{
		Use:   "add <id> <name> <price>",
		Short: "Add an item to the shop",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := parsePositiveInt("price", args[2])
			if err != nil {
				return err
			}
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			if err := a.services.Shop.AddShopItem(cmd.Context(), &domain.ShopItem{ItemID: args[0], Name: args[1], Price: price}); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "added item %s at %s", accent.Sprint(args[0]), utils.FormatCredits(price))
			return nil
		},
	})
	return item
}

func newJobCmd() *cobra.Command {
	var description string
	add := &cobra.Command{
		Use:   "add <id> <name> <hourly_pay> <acceptance_chance>",
		Short: "Add a job to the job market",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			pay, err := parsePositiveInt("hourly_pay", args[2])
			if err != nil {
				return err
			}
			chance, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return fmt.Errorf("invalid acceptance_chance %q: %w", args[3], err)
			}
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			err = a.services.Jobs.AddJob(cmd.Context(), &domain.Job{
				JobID:            args[0],
				Name:             args[1],
				Description:      description,
				HourlyPay:        pay,
				AcceptanceChance: chance,
			})
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "added job %s paying %s/h", accent.Sprint(args[0]), utils.FormatNumber(pay))
			return nil
		},
	}
	add.Flags().StringVar(&description, "description", "", "job description")

	job := &cobra.Command{
		Use:   "job",
		Short: "Job market commands",
	}
	job.AddCommand(add)
	return job
}

func newStockCmd() *cobra.Command {
	stock := &cobra.Command{
		Use:     "stock",
		Short:   "Stock market commands",
		Aliases: []string{"stocks"},
	}

	stock.AddCommand(&cobra.Command{
		Use:   "add <id> <name> <price>",
		Short: "List a new stock",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := decimal.NewFromString(args[2])
			if err != nil {
				return fmt.Errorf("invalid price %q: %w", args[2], err)
			}
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			if err := a.services.Stocks.AddStock(cmd.Context(), &domain.Stock{StockID: args[0], Name: args[1], Price: price}); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "listed %s at %s", accent.Sprint(args[0]), price.String())
			return nil
		},
	})

	var order string
	var page int
	list := &cobra.Command{
		Use:   "list",
		Short: "Show one page of the market overview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o := domain.StockOrder(strings.ToLower(order))
			if o != domain.StockOrderHighest && o != domain.StockOrderLowest {
				return fmt.Errorf("order must be %s or %s", domain.StockOrderHighest, domain.StockOrderLowest)
			}
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			p, err := a.services.Stocks.MarketOverview(cmd.Context(), o, page)
			if err != nil {
				return err
			}
			renderStockPage(cmd.OutOrStdout(), p)
			return nil
		},
	}
	list.Flags().StringVar(&order, "order", string(domain.StockOrderHighest), "highest or lowest")
	list.Flags().IntVar(&page, "page", 1, "page number")
	stock.AddCommand(list)

	return stock
}

func newBalanceCmd() *cobra.Command {
	var add, remove int64
	cmd := &cobra.Command{
		Use:   "balance <user_id>",
		Short: "Show or adjust a user's balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parsePositiveInt("user_id", args[0])
			if err != nil {
				return err
			}
			if add < 0 || remove < 0 {
				return fmt.Errorf("--add and --remove take positive amounts")
			}
			if add > 0 && remove > 0 {
				return fmt.Errorf("use either --add or --remove, not both")
			}
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			var balance int64
			switch {
			case add > 0:
				balance, err = a.services.Ledger.AddBalance(cmd.Context(), userID, add)
			case remove > 0:
				balance, err = a.services.Ledger.RemoveBalance(cmd.Context(), userID, remove)
			default:
				balance, err = a.services.Ledger.GetBalance(cmd.Context(), userID)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "user %d balance %s\n", userID, accent.Sprint(utils.FormatCredits(balance)))
			return nil
		},
	}
	cmd.Flags().Int64Var(&add, "add", 0, "credits to add")
	cmd.Flags().Int64Var(&remove, "remove", 0, "credits to remove")
	return cmd
}

func newMarketCmd() *cobra.Command {
	market := &cobra.Command{
		Use:   "market",
		Short: "Drive the market by hand",
	}

	var prune bool
	tick := &cobra.Command{
		Use:   "tick",
		Short: "Apply one price fluctuation to every stock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			if err := a.services.Stocks.Fluctuate(cmd.Context()); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "market ticked")
			if prune {
				n, err := a.services.Stocks.PruneHistory(cmd.Context())
				if err != nil {
					return err
				}
				printSuccess(cmd.OutOrStdout(), "pruned %d price samples", n)
			}
			return nil
		},
	}
	tick.Flags().BoolVar(&prune, "prune", false, "also trim the price history")

	trends := &cobra.Command{
		Use:   "trends",
		Short: "Show each stock's recent change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			t, err := a.services.Stocks.MarketTrends(cmd.Context())
			if err != nil {
				return err
			}
			renderTrends(cmd.OutOrStdout(), t)
			return nil
		},
	}

	market.AddCommand(tick, trends)
	return market
}

func parsePositiveInt(name, raw string) (int64, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, raw)
	}
	return n, nil
}
