package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"aerocastle-backend/internal/dto"
	"aerocastle-backend/internal/model"
	"aerocastle-backend/internal/repository"

	"gorm.io/gorm"
)

// CatalogService covers products plus the thin brand/category/supplier CRUD
// around them.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]*model.Product, error)
	GetProduct(ctx context.Context, id uint) (*model.Product, error)
	CreateProduct(ctx context.Context, req *dto.ProductRequest) (*model.Product, error)
	UpdateProduct(ctx context.Context, id uint, req *dto.ProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uint) error

	ListBrands(ctx context.Context) ([]*model.Brand, error)
	GetBrand(ctx context.Context, id uint) (*model.Brand, error)
	CreateBrand(ctx context.Context, req *dto.BrandRequest) (*model.Brand, error)
	UpdateBrand(ctx context.Context, id uint, req *dto.BrandRequest) (*model.Brand, error)
	DeleteBrand(ctx context.Context, id uint) error

	ListCategories(ctx context.Context) ([]*model.Category, error)
	GetCategory(ctx context.Context, id uint) (*model.Category, error)
	CreateCategory(ctx context.Context, req *dto.CategoryRequest) (*model.Category, error)
	UpdateCategory(ctx context.Context, id uint, req *dto.CategoryRequest) (*model.Category, error)
	DeleteCategory(ctx context.Context, id uint) error

	ListSuppliers(ctx context.Context) ([]*model.Supplier, error)
	GetSupplier(ctx context.Context, id uint) (*model.Supplier, error)
	CreateSupplier(ctx context.Context, req *dto.SupplierRequest) (*model.Supplier, error)
	UpdateSupplier(ctx context.Context, id uint, req *dto.SupplierRequest) (*model.Supplier, error)
	DeleteSupplier(ctx context.Context, id uint) error
}

type catalogServiceImpl struct {
	productRepo  repository.ProductRepository
	brandRepo    repository.BrandRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
}

func NewCatalogService(
	productRepo repository.ProductRepository,
	brandRepo repository.BrandRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
) CatalogService {
	return &catalogServiceImpl{
		productRepo:  productRepo,
		brandRepo:    brandRepo,
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
	}
}

// ---- products ----

func (s *catalogServiceImpl) ListProducts(ctx context.Context) ([]*model.Product, error) {
	return s.productRepo.FindAll(ctx)
}

func (s *catalogServiceImpl) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: producto %d", ErrNotFound, id)
		}
		return nil, err
	}

	return product, nil
}

func (s *catalogServiceImpl) checkProductRefs(ctx context.Context, req *dto.ProductRequest) error {
	if _, err := s.supplierRepo.FindByID(ctx, req.SupplierID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: proveedor %d", ErrNotFound, req.SupplierID)
		}
		return err
	}
	if _, err := s.brandRepo.FindByID(ctx, req.BrandID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: marca %d", ErrNotFound, req.BrandID)
		}
		return err
	}
	if _, err := s.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: categoria %d", ErrNotFound, req.CategoryID)
		}
		return err
	}

	return nil
}

func (s *catalogServiceImpl) CreateProduct(ctx context.Context, req *dto.ProductRequest) (*model.Product, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", ErrValidation)
	}

	exists, err := s.productRepo.ExistsByName(ctx, req.Name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: ya existe un producto con ese nombre", ErrConflict)
	}

	if err := s.checkProductRefs(ctx, req); err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		OriginalPrice:   req.OriginalPrice,
		MainImage:       req.MainImage,
		SecondaryImages: strings.Join(req.SecondaryImages, ","),
		SupplierID:      req.SupplierID,
		BrandID:         req.BrandID,
		CategoryID:      req.CategoryID,
		EditionLimit:    req.EditionLimit,
		SerialStart:     req.SerialStart,
		SpecialFeatures: req.SpecialFeatures,
		ReleaseDate:     req.ReleaseDate,
		Active:          true,
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Active != nil {
		product.Active = *req.Active
	}
	if req.Featured != nil {
		product.Featured = *req.Featured
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("store product: %w", err)
	}

	return product, nil
}

func (s *catalogServiceImpl) UpdateProduct(ctx context.Context, id uint, req *dto.ProductRequest) (*model.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" && req.Name != product.Name {
		exists, err := s.productRepo.ExistsByName(ctx, req.Name, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%w: ya existe un producto con ese nombre", ErrConflict)
		}
		product.Name = req.Name
	}

	if req.SupplierID != 0 {
		if _, err := s.supplierRepo.FindByID(ctx, req.SupplierID); err != nil {
			return nil, fmt.Errorf("%w: proveedor %d", ErrNotFound, req.SupplierID)
		}
		product.SupplierID = req.SupplierID
	}
	if req.BrandID != 0 {
		if _, err := s.brandRepo.FindByID(ctx, req.BrandID); err != nil {
			return nil, fmt.Errorf("%w: marca %d", ErrNotFound, req.BrandID)
		}
		product.BrandID = req.BrandID
	}
	if req.CategoryID != 0 {
		if _, err := s.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
			return nil, fmt.Errorf("%w: categoria %d", ErrNotFound, req.CategoryID)
		}
		product.CategoryID = req.CategoryID
	}

	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Price != 0 {
		product.Price = req.Price
	}
	if req.OriginalPrice != nil {
		product.OriginalPrice = req.OriginalPrice
	}
	if req.MainImage != "" {
		product.MainImage = req.MainImage
	}
	if req.SecondaryImages != nil {
		product.SecondaryImages = strings.Join(req.SecondaryImages, ",")
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.EditionLimit != nil {
		product.EditionLimit = req.EditionLimit
	}
	if req.SerialStart != nil {
		product.SerialStart = req.SerialStart
	}
	if req.SpecialFeatures != nil {
		product.SpecialFeatures = req.SpecialFeatures
	}
	if req.ReleaseDate != nil {
		product.ReleaseDate = req.ReleaseDate
	}
	if req.Active != nil {
		product.Active = *req.Active
	}
	if req.Featured != nil {
		product.Featured = *req.Featured
	}

	// clear preloaded relations so stale associations are not re-saved
	product.Supplier = nil
	product.Brand = nil
	product.Category = nil

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	return product, nil
}

// DeleteProduct refuses to remove a product that order lines still reference;
// reviews and wish-list rows are cascaded away.
func (s *catalogServiceImpl) DeleteProduct(ctx context.Context, id uint) error {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.productRepo.CountOrderLines(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: el producto esta asociado a pedidos", ErrConflict)
	}

	return s.productRepo.Delete(ctx, product)
}

// ---- brands ----

func (s *catalogServiceImpl) ListBrands(ctx context.Context) ([]*model.Brand, error) {
	return s.brandRepo.FindAll(ctx)
}

func (s *catalogServiceImpl) GetBrand(ctx context.Context, id uint) (*model.Brand, error) {
	brand, err := s.brandRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: marca %d", ErrNotFound, id)
		}
		return nil, err
	}

	return brand, nil
}

func (s *catalogServiceImpl) CreateBrand(ctx context.Context, req *dto.BrandRequest) (*model.Brand, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", ErrValidation)
	}

	brand := &model.Brand{Name: req.Name, Description: req.Description, LogoURL: req.LogoURL}
	if err := s.brandRepo.Create(ctx, brand); err != nil {
		return nil, err
	}

	return brand, nil
}

func (s *catalogServiceImpl) UpdateBrand(ctx context.Context, id uint, req *dto.BrandRequest) (*model.Brand, error) {
	brand, err := s.GetBrand(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		brand.Name = req.Name
	}
	if req.Description != "" {
		brand.Description = req.Description
	}
	if req.LogoURL != "" {
		brand.LogoURL = req.LogoURL
	}

	if err := s.brandRepo.Update(ctx, brand); err != nil {
		return nil, err
	}

	return brand, nil
}

func (s *catalogServiceImpl) DeleteBrand(ctx context.Context, id uint) error {
	rows, err := s.brandRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: marca %d", ErrNotFound, id)
	}

	return nil
}

// ---- categories ----

func (s *catalogServiceImpl) ListCategories(ctx context.Context) ([]*model.Category, error) {
	return s.categoryRepo.FindAll(ctx)
}

func (s *catalogServiceImpl) GetCategory(ctx context.Context, id uint) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: categoria %d", ErrNotFound, id)
		}
		return nil, err
	}

	return category, nil
}

func (s *catalogServiceImpl) CreateCategory(ctx context.Context, req *dto.CategoryRequest) (*model.Category, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", ErrValidation)
	}

	category := &model.Category{Name: req.Name, Description: req.Description}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *catalogServiceImpl) UpdateCategory(ctx context.Context, id uint, req *dto.CategoryRequest) (*model.Category, error) {
	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		category.Name = req.Name
	}
	if req.Description != "" {
		category.Description = req.Description
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *catalogServiceImpl) DeleteCategory(ctx context.Context, id uint) error {
	rows, err := s.categoryRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: categoria %d", ErrNotFound, id)
	}

	return nil
}

// ---- suppliers ----

func (s *catalogServiceImpl) ListSuppliers(ctx context.Context) ([]*model.Supplier, error) {
	return s.supplierRepo.FindAll(ctx)
}

func (s *catalogServiceImpl) GetSupplier(ctx context.Context, id uint) (*model.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: proveedor %d", ErrNotFound, id)
		}
		return nil, err
	}

	return supplier, nil
}

func (s *catalogServiceImpl) CreateSupplier(ctx context.Context, req *dto.SupplierRequest) (*model.Supplier, error) {
	if req.Name == "" || req.Phone == "" || req.DNI == "" {
		return nil, fmt.Errorf("%w: nombre, telefono y DNI son obligatorios", ErrValidation)
	}

	supplier := &model.Supplier{
		Name:    req.Name,
		Phone:   req.Phone,
		DNI:     req.DNI,
		Email:   req.Email,
		Address: req.Address,
		Active:  true,
	}
	if req.Active != nil {
		supplier.Active = *req.Active
	}

	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}

func (s *catalogServiceImpl) UpdateSupplier(ctx context.Context, id uint, req *dto.SupplierRequest) (*model.Supplier, error) {
	supplier, err := s.GetSupplier(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		supplier.Name = req.Name
	}
	if req.Phone != "" {
		supplier.Phone = req.Phone
	}
	if req.DNI != "" {
		supplier.DNI = req.DNI
	}
	if req.Email != "" {
		supplier.Email = req.Email
	}
	if req.Address != "" {
		supplier.Address = req.Address
	}
	if req.Active != nil {
		supplier.Active = *req.Active
	}

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}

func (s *catalogServiceImpl) DeleteSupplier(ctx context.Context, id uint) error {
	rows, err := s.supplierRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: proveedor %d", ErrNotFound, id)
	}

	return nil
}
