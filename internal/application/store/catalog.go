package store

import (
	"context"
	"path"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/pos"
)

// ProductInput datos de un producto sin identificador.
type ProductInput struct {
	Name             string
	Price            decimal.Decimal
	InstallmentPrice *decimal.Decimal
	Category         string
	Stock            int
	ImageURL         string
}

func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.ErrInvalidInput
	}
	if !pos.ValidAmount(in.Price) || in.Stock < 0 {
		return domain.ErrInvalidInput
	}
	if in.InstallmentPrice != nil && !pos.ValidAmount(*in.InstallmentPrice) {
		return domain.ErrInvalidInput
	}
	return nil
}

// AddProduct asigna ID y SKU, persiste y agrega el producto al inicio del catálogo.
func (s *Store) AddProduct(ctx context.Context, in ProductInput) (*entity.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.opts.Now()
	p := &entity.Product{
		ID:               s.opts.NewID(),
		SKUNumber:        now.UnixMilli(),
		Name:             strings.TrimSpace(in.Name),
		Price:            in.Price,
		InstallmentPrice: in.InstallmentPrice,
		Category:         in.Category,
		Stock:            in.Stock,
		ImageURL:         in.ImageURL,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.external(ctx, "crear producto", func(ctx context.Context) error {
		return s.backend.Products.Create(ctx, p)
	}); err != nil {
		return nil, err
	}
	s.products = append([]*entity.Product{p}, s.products...)
	return p.Clone(), nil
}

// UpdateProduct reemplaza el producto con el mismo ID. SKUNumber y CreatedAt se conservan.
// Las líneas del carrito que lo referencian se refrescan.
func (s *Store) UpdateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	if product == nil {
		return nil, domain.ErrInvalidInput
	}
	in := ProductInput{
		Name: product.Name, Price: product.Price, InstallmentPrice: product.InstallmentPrice,
		Category: product.Category, Stock: product.Stock, ImageURL: product.ImageURL,
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.productIndex(product.ID)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	updated := product.Clone()
	updated.Name = strings.TrimSpace(updated.Name)
	updated.SKUNumber = s.products[idx].SKUNumber
	updated.CreatedAt = s.products[idx].CreatedAt
	updated.UpdatedAt = s.opts.Now()
	if err := s.external(ctx, "actualizar producto", func(ctx context.Context) error {
		return s.backend.Products.Update(ctx, updated)
	}); err != nil {
		return nil, err
	}
	s.products[idx] = updated
	s.cart.RefreshProduct(updated)
	return updated.Clone(), nil
}

// DeleteProduct elimina el producto y lo quita del carrito. La imagen se borra en modo best-effort.
func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.productIndex(id)
	if idx < 0 {
		return domain.ErrNotFound
	}
	p := s.products[idx]
	if err := s.external(ctx, "eliminar producto", func(ctx context.Context) error {
		return s.backend.Products.Delete(ctx, id)
	}); err != nil {
		return err
	}
	s.products = append(s.products[:idx:idx], s.products[idx+1:]...)
	s.cart.RemoveLine(id)
	s.deleteImageBestEffort(ctx, p.ImageURL)
	return nil
}

// SetProductImage sube la imagen (nombre = ID del producto + extensión) y actualiza ImageURL.
// Si la URL anterior es distinta, se elimina en modo best-effort.
func (s *Store) SetProductImage(ctx context.Context, id, filename string, data []byte) (*entity.Product, error) {
	if len(data) == 0 || s.backend.Images == nil {
		return nil, domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.productIndex(id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	oldURL := s.products[idx].ImageURL
	name := id + strings.ToLower(path.Ext(filename))

	var url string
	if err := s.external(ctx, "subir imagen", func(ctx context.Context) error {
		var err error
		url, err = s.backend.Images.Upload(ctx, name, data)
		return err
	}); err != nil {
		return nil, err
	}
	updated := s.products[idx].Clone()
	updated.ImageURL = url
	updated.UpdatedAt = s.opts.Now()
	if err := s.external(ctx, "actualizar producto", func(ctx context.Context) error {
		return s.backend.Products.Update(ctx, updated)
	}); err != nil {
		if url != oldURL {
			s.deleteImageBestEffort(ctx, url)
		}
		return nil, err
	}
	s.products[idx] = updated
	s.cart.RefreshProduct(updated)
	if oldURL != "" && oldURL != url {
		s.deleteImageBestEffort(ctx, oldURL)
	}
	return updated.Clone(), nil
}

func (s *Store) deleteImageBestEffort(ctx context.Context, url string) {
	if url == "" || s.backend.Images == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()
	if err := s.backend.Images.Delete(ctx, url); err != nil {
		s.log.Warn().Err(err).Str("url", url).Msg("no se pudo eliminar la imagen huérfana")
	}
}

// GetProduct devuelve una copia del producto o domain.ErrNotFound.
func (s *Store) GetProduct(id string) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.productIndex(id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	return s.products[idx].Clone(), nil
}

// ListProducts devuelve copias de todos los productos (más recientes primero).
// category vacío = todas; search filtra por nombre (case-insensitive).
func (s *Store) ListProducts(category, search string) []*entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]*entity.Product, 0, len(s.products))
	for _, p := range s.products {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		out = append(out, p.Clone())
	}
	return out
}

// LowStock productos con stock <= threshold.
func (s *Store) LowStock(threshold int) []*entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Product
	for _, p := range s.products {
		if p.Stock <= threshold {
			out = append(out, p.Clone())
		}
	}
	return out
}
