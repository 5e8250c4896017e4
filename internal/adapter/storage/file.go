package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/evoshop/storefront/internal/core/domain"
	"github.com/evoshop/storefront/internal/core/port"
)

// cartKey is the fixed key the cart is stored under, one JSON file per key.
const cartKey = "cart"

var _ port.CartRepository = (*FileRepository)(nil)

// FileRepository keeps the cart snapshot in a local per-client file,
// the desktop analog of browser local storage.
type FileRepository struct {
	dir string
}

func NewFileRepository(dir string) (FileRepository, error) {
	const op = "FileRepository"

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return FileRepository{}, fmt.Errorf("%s: %w", op, err)
	}
	return FileRepository{dir}, nil
}

func (r FileRepository) Load(ctx context.Context) ([]domain.CartItem, error) {
	const op = "FileRepository.Load"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	data, err := os.ReadFile(r.path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", op, port.ErrNoCart)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items, err := decodeItems(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

func (r FileRepository) Save(ctx context.Context, items []domain.CartItem) error {
	const op = "FileRepository.Save"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	data, err := encodeItems(items)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := os.WriteFile(r.path(), data, 0o644); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r FileRepository) path() string {
	return filepath.Join(r.dir, cartKey+".json")
}
