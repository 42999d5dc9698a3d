package outwriter

import (
	"io"

	"github.com/huangsam/crs/internal/contract"
	"github.com/huangsam/crs/internal/iocache"
	"github.com/huangsam/crs/schema"
)

// WriteStoreStatus prints profile store status as text or JSON.
func WriteStoreStatus(status schema.StoreStatus, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, status)
		}, "Wrote JSON")
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		iocache.PrintStoreStatus(w, status)
		return nil
	}, "Wrote text")
}
