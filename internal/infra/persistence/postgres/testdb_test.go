package postgres

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"salesboard/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory SQLite store with the sales schema migrated.
// A single connection keeps the shared cache free of table locks.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 newGormSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)), nil),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))

	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type seedOrder struct {
	platform string
	orderID  string
	category string
	quantity int64
	price    string
	sold     time.Time
	address  string
	status   string
}

// seed writes orders and, when status is set, their deliveries straight through the repositories.
func seed(t *testing.T, db *gorm.DB, orders ...seedOrder) {
	t.Helper()

	ctx := context.Background()
	platformRepo := NewPlatformRepository(db)
	customerRepo := NewCustomerRepository(db)
	orderRepo := NewOrderRepository(db)
	deliveryRepo := NewDeliveryRepository(db)

	for _, o := range orders {
		platform, err := platformRepo.GetOrCreateByName(ctx, o.platform)
		require.NoError(t, err)

		customer := &entity.Customer{ID: "C-" + o.orderID, Name: "Customer " + o.orderID, Email: "c@example.com", Phone: "555"}
		_, err = customerRepo.CreateIfAbsent(ctx, customer)
		require.NoError(t, err)

		require.NoError(t, orderRepo.Upsert(ctx, &entity.Order{
			ID:           o.orderID,
			ProductID:    "P-" + o.orderID,
			ProductName:  "Product " + o.orderID,
			Category:     o.category,
			QuantitySold: o.quantity,
			SellingPrice: decimal.RequireFromString(o.price),
			DateOfSale:   o.sold,
			CustomerID:   customer.ID,
			PlatformID:   platform.ID,
		}))

		if o.status == "" {
			continue
		}
		require.NoError(t, deliveryRepo.UpsertByOrder(ctx, &entity.Delivery{
			OrderID: o.orderID,
			Address: o.address,
			Date:    o.sold.AddDate(0, 0, 3),
			Status:  o.status,
			Partner: "BlueDart",
		}))
	}
}
