package repository

import "context"

// ImageStorage almacenamiento de blobs para imágenes de productos.
type ImageStorage interface {
	// Upload guarda (o reemplaza) el archivo y devuelve su URL pública.
	Upload(ctx context.Context, name string, data []byte) (string, error)
	// Delete elimina el blob a partir de su URL pública.
	Delete(ctx context.Context, url string) error
}
