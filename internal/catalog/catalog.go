// Package catalog reads the seed file for shop items, jobs and stocks and feeds it through the
// services' admin add operations.
package catalog

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"github.com/osse101/SpaceBot_Go/internal/domain"
	"github.com/osse101/SpaceBot_Go/internal/logger"
	"github.com/osse101/SpaceBot_Go/internal/validation"
)

//go:embed catalog.schema.json
var schemaDoc []byte

var catalogSchema = validation.MustCompile(SchemaName, schemaDoc)

// ErrInvalidCatalog wraps every validation failure
var ErrInvalidCatalog = errors.New("invalid catalog")

// File is the TOML seed file
type File struct {
	Items  []ItemDef  `toml:"items"`
	Jobs   []JobDef   `toml:"jobs"`
	Stocks []StockDef `toml:"stocks"`
}

type ItemDef struct {
	ID    string `toml:"id"`
	Name  string `toml:"name"`
	Price int64  `toml:"price"`
}

type JobDef struct {
	ID               string  `toml:"id"`
	Name             string  `toml:"name"`
	Description      string  `toml:"description"`
	HourlyPay        int64   `toml:"hourly_pay"`
	AcceptanceChance float64 `toml:"acceptance_chance"`
}

// StockDef prices are quoted strings so no precision is lost to float parsing
type StockDef struct {
	ID    string          `toml:"id"`
	Name  string          `toml:"name"`
	Price decimal.Decimal `toml:"price"`
}

// ItemAdder, JobAdder and StockAdder are the admin add operations Seed drives
type ItemAdder interface {
	AddShopItem(ctx context.Context, item *domain.ShopItem) error
}

type JobAdder interface {
	AddJob(ctx context.Context, job *domain.Job) error
}

type StockAdder interface {
	AddStock(ctx context.Context, stock *domain.Stock) error
}

// Targets groups the services a seed writes to. Nil targets are skipped.
type Targets struct {
	Items  ItemAdder
	Jobs   JobAdder
	Stocks StockAdder
}

// SeedResult counts what a seed run did
type SeedResult struct {
	Inserted int
	Skipped  int
}

// Load reads, parses and validates a catalog file
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}
	return Parse(data)
}

// Parse decodes catalog TOML. The raw document is checked against the embedded schema first,
// so unknown keys and out of range values are reported with their path.
func Parse(data []byte) (*File, error) {
	raw := map[string]interface{}{}
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}
	if err := catalogSchema.ValidateValue(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	var f File
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks ids, names and numeric bounds. Parse has already applied the schema, but
// Validate also covers Files built in code and the cross-entry duplicate check.
func (f *File) Validate() error {
	if len(f.Items) == 0 && len(f.Jobs) == 0 && len(f.Stocks) == 0 {
		return fmt.Errorf(ErrFmtEmpty, ErrInvalidCatalog)
	}

	seen := make(map[string]bool, len(f.Items))
	for i, it := range f.Items {
		if err := checkEntry(kindItem, i, it.ID, it.Name, seen); err != nil {
			return err
		}
		if it.Price <= 0 {
			return fmt.Errorf(ErrFmtNonPositivePrice, ErrInvalidCatalog, kindItem, it.ID)
		}
	}

	seen = make(map[string]bool, len(f.Jobs))
	for i, j := range f.Jobs {
		if err := checkEntry(kindJob, i, j.ID, j.Name, seen); err != nil {
			return err
		}
		if j.HourlyPay <= 0 {
			return fmt.Errorf(ErrFmtNonPositivePay, ErrInvalidCatalog, j.ID)
		}
		if j.AcceptanceChance < 0 || j.AcceptanceChance > 1 {
			return fmt.Errorf(ErrFmtChanceOutOfBounds, ErrInvalidCatalog, j.ID)
		}
	}

	seen = make(map[string]bool, len(f.Stocks))
	for i, s := range f.Stocks {
		if err := checkEntry(kindStock, i, s.ID, s.Name, seen); err != nil {
			return err
		}
		if !s.Price.IsPositive() {
			return fmt.Errorf(ErrFmtNonPositivePrice, ErrInvalidCatalog, kindStock, s.ID)
		}
	}
	return nil
}

func checkEntry(kind string, index int, id, name string, seen map[string]bool) error {
	if id == "" {
		return fmt.Errorf(ErrFmtEntryEmptyID, ErrInvalidCatalog, kind, index)
	}
	if name == "" {
		return fmt.Errorf(ErrFmtEntryEmptyName, ErrInvalidCatalog, kind, id)
	}
	if seen[id] {
		return fmt.Errorf(ErrFmtDuplicateID, ErrInvalidCatalog, kind, id)
	}
	seen[id] = true
	return nil
}

// Seed adds every entry through the admin operations. Entries that already exist are skipped,
// so seeding the same file twice is harmless.
func Seed(ctx context.Context, f *File, t Targets) (*SeedResult, error) {
	log := logger.FromContext(ctx)
	res := &SeedResult{}

	record := func(kind, id string, err error, errFmt string) error {
		switch {
		case err == nil:
			res.Inserted++
			return nil
		case errors.Is(err, domain.ErrDuplicate):
			log.Debug(LogMsgEntryExists, "kind", kind, "id", id)
			res.Skipped++
			return nil
		default:
			return fmt.Errorf(errFmt, id, err)
		}
	}

	if t.Items != nil {
		for _, it := range f.Items {
			err := t.Items.AddShopItem(ctx, &domain.ShopItem{ItemID: it.ID, Name: it.Name, Price: it.Price})
			if err := record(kindItem, it.ID, err, ErrMsgSeedItemFailed); err != nil {
				return res, err
			}
		}
	}

	if t.Jobs != nil {
		for _, j := range f.Jobs {
			err := t.Jobs.AddJob(ctx, &domain.Job{
				JobID:            j.ID,
				Name:             j.Name,
				Description:      j.Description,
				HourlyPay:        j.HourlyPay,
				AcceptanceChance: j.AcceptanceChance,
			})
			if err := record(kindJob, j.ID, err, ErrMsgSeedJobFailed); err != nil {
				return res, err
			}
		}
	}

	if t.Stocks != nil {
		for _, s := range f.Stocks {
			err := t.Stocks.AddStock(ctx, &domain.Stock{StockID: s.ID, Name: s.Name, Price: s.Price})
			if err := record(kindStock, s.ID, err, ErrMsgSeedStockFailed); err != nil {
				return res, err
			}
		}
	}

	log.Info(LogMsgSeedCompleted, "inserted", res.Inserted, "skipped", res.Skipped)
	return res, nil
}
