package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
)

const productsDir = "products"

var _ repository.ImageStorage = (*ImageStorage)(nil)

// ImageStorage guarda imágenes de productos en un afero.Fs bajo <root>/products/.
// La URL pública es <publicURL>/products/<nombre>.
type ImageStorage struct {
	fs        afero.Fs
	root      string
	publicURL string
}

// NewImageStorage usa el sistema de archivos del SO con raíz en dir.
func NewImageStorage(dir, publicURL string) *ImageStorage {
	return NewImageStorageFs(afero.NewOsFs(), dir, publicURL)
}

// NewImageStorageFs permite inyectar otro Fs (p. ej. afero.NewMemMapFs en tests).
func NewImageStorageFs(fs afero.Fs, root, publicURL string) *ImageStorage {
	return &ImageStorage{fs: fs, root: root, publicURL: strings.TrimRight(publicURL, "/")}
}

func (s *ImageStorage) Upload(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name, err := cleanName(name)
	if err != nil {
		return "", err
	}
	dir := filepath.Join(s.root, productsDir)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("crear directorio de imágenes: %w", err)
	}
	if err := afero.WriteFile(s.fs, filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("guardar imagen %s: %w", name, err)
	}
	return s.publicURL + "/" + productsDir + "/" + name, nil
}

// Delete toma el último segmento de la URL como nombre de archivo. Un archivo inexistente no es error.
func (s *ImageStorage) Delete(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name, err := cleanName(path.Base(url))
	if err != nil {
		return err
	}
	err = s.fs.Remove(filepath.Join(s.root, productsDir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("eliminar imagen %s: %w", name, err)
	}
	return nil
}

func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == "/" || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, "..") {
		return "", domain.ErrInvalidInput
	}
	return name, nil
}
