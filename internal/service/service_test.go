package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"aerocastle-backend/internal/client"
	"aerocastle-backend/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBSeq int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// a named shared-cache memory database so every pooled connection sees
	// the same data
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	if err := client.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()

	user := &model.User{
		Username:        "carlos",
		Email:           "carlos@example.com",
		Password:        "irrelevant",
		DNI:             "12345678",
		Confirmed:       true,
		ShippingAddress: "Av. Siempre Viva 742",
		BillingAddress:  "Av. Siempre Viva 742",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	return user
}

func seedCatalogRefs(t *testing.T, db *gorm.DB) (supplier *model.Supplier, brand *model.Brand, category *model.Category) {
	t.Helper()

	supplier = &model.Supplier{Name: "Proveedor SA", Phone: "555-0100", DNI: "20304050"}
	brand = &model.Brand{Name: "Castillo"}
	category = &model.Category{Name: "Figuras"}
	if err := db.Create(supplier).Error; err != nil {
		t.Fatalf("seed supplier: %v", err)
	}
	if err := db.Create(brand).Error; err != nil {
		t.Fatalf("seed brand: %v", err)
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}

	return supplier, brand, category
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) *model.Product {
	t.Helper()

	supplier, brand, category := seedCatalogRefs(t, db)
	product := &model.Product{
		Name:       name,
		Price:      price,
		Stock:      stock,
		SupplierID: supplier.ID,
		BrandID:    brand.ID,
		CategoryID: category.ID,
		Active:     true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}

	return product
}

func reloadProduct(t *testing.T, db *gorm.DB, id uint) *model.Product {
	t.Helper()

	var product model.Product
	if err := db.First(&product, id).Error; err != nil {
		t.Fatalf("reload product %d: %v", id, err)
	}

	return &product
}

func reloadOrder(t *testing.T, db *gorm.DB, id uint) *model.Order {
	t.Helper()

	var order model.Order
	if err := db.Preload("Lines").First(&order, id).Error; err != nil {
		t.Fatalf("reload order %d: %v", id, err)
	}

	return &order
}

// recordingNotifier captures best-effort notifications for assertions.
type recordingNotifier struct {
	confirmations []float64
	codes         []string
	fail          bool
}

func (n *recordingNotifier) PaymentConfirmation(_ context.Context, _, _ string, amount float64) error {
	if n.fail {
		return fmt.Errorf("broker unavailable")
	}
	n.confirmations = append(n.confirmations, amount)
	return nil
}

func (n *recordingNotifier) ConfirmationCode(_ context.Context, _, _, code string) error {
	if n.fail {
		return fmt.Errorf("broker unavailable")
	}
	n.codes = append(n.codes, code)
	return nil
}
