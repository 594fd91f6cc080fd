package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-saveinject/internal/catalog"
)

type CatalogConfig struct {
	Path   string         `json:"path"`
	Format catalog.Format `json:"format"`
}

func (c *CatalogConfig) validate() error {
	el := errors.NewErrorList()

	if c.Path == "" {
		el.Add(fmt.Errorf("catalog: path is required"))
	} else if _, err := os.Stat(c.Path); err != nil {
		el.Add(fmt.Errorf("catalog: invalid path %q: %w", c.Path, err))
	}

	return el.Err()
}

func (c *CatalogConfig) BuildCatalog() (*catalog.Store, error) {
	return catalog.LoadFile(c.Path, c.Format)
}
