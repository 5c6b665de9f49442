package repository

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

	dsn := fmt.Sprintf("file:repo_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	if err := client.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return db
}

func seedProduct(t *testing.T, db *gorm.DB, stock int) *model.Product {
	t.Helper()

	supplier := &model.Supplier{Name: "Proveedor SA", Phone: "555-0100", DNI: "20304050"}
	brand := &model.Brand{Name: "Castillo"}
	category := &model.Category{Name: "Figuras"}
	for _, ref := range []any{supplier, brand, category} {
		if err := db.Create(ref).Error; err != nil {
			t.Fatalf("seed catalog ref: %v", err)
		}
	}

	product := &model.Product{
		Name:       "Castillo Real",
		Price:      19.99,
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

func currentStock(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()

	var product model.Product
	if err := db.First(&product, id).Error; err != nil {
		t.Fatalf("reload product: %v", err)
	}

	return product.Stock
}

func TestDecrementStockGuard(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	product := seedProduct(t, db, 5)
	ctx := context.Background()

	rows, err := repo.DecrementStock(ctx, db, product.ID, 3)
	if err != nil {
		t.Fatalf("DecrementStock: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected 1 row affected, got %d", rows)
	}
	if stock := currentStock(t, db, product.ID); stock != 2 {
		t.Errorf("expected stock 2, got %d", stock)
	}

	// asking for more than is left must not touch the row
	rows, err = repo.DecrementStock(ctx, db, product.ID, 3)
	if err != nil {
		t.Fatalf("DecrementStock over limit: %v", err)
	}
	if rows != 0 {
		t.Errorf("expected guard to refuse the decrement, got %d rows", rows)
	}
	if stock := currentStock(t, db, product.ID); stock != 2 {
		t.Errorf("expected stock unchanged at 2, got %d", stock)
	}

	// exact remainder drains to zero but never below
	rows, err = repo.DecrementStock(ctx, db, product.ID, 2)
	if err != nil {
		t.Fatalf("DecrementStock remainder: %v", err)
	}
	if rows != 1 {
		t.Errorf("expected remainder decrement accepted, got %d rows", rows)
	}
	if stock := currentStock(t, db, product.ID); stock != 0 {
		t.Errorf("expected stock 0, got %d", stock)
	}

	rows, _ = repo.DecrementStock(ctx, db, product.ID, 1)
	if rows != 0 {
		t.Errorf("expected empty stock to refuse any decrement, got %d rows", rows)
	}
}

func TestDecrementStockMissingProduct(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)

	rows, err := repo.DecrementStock(context.Background(), db, 99, 1)
	if err != nil {
		t.Fatalf("DecrementStock: %v", err)
	}
	if rows != 0 {
		t.Errorf("expected 0 rows for missing product, got %d", rows)
	}
}

func TestIncrementStock(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	product := seedProduct(t, db, 2)

	if err := repo.IncrementStock(context.Background(), db, product.ID, 3); err != nil {
		t.Fatalf("IncrementStock: %v", err)
	}
	if stock := currentStock(t, db, product.ID); stock != 5 {
		t.Errorf("expected stock 5, got %d", stock)
	}
}
