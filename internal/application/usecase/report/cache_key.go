// Package report contains report drafting, archive and delivery use cases.
package report

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/bizportal/backend/internal/domain/entity"
)

// draftCacheKey identifies a ledger slice. Any change to a transaction of
// the slice, or to the entrepreneur, yields a different key.
func draftCacheKey(e *entity.Entrepreneur, period string, transactions []*entity.Transaction) string {
	h := sha256.New()
	writeField(h, e.DisplayName())
	writeField(h, e.UpdatedAt.UTC().Format("2006-01-02T15:04:05.000000000"))
	for _, tx := range transactions {
		writeField(h, tx.ID.String())
		writeField(h, string(tx.Type))
		writeField(h, tx.DateKey())
		writeField(h, tx.Amount.String())
		if status, ok := tx.IncomePaidStatus(); ok {
			writeField(h, string(status))
		}
		writeField(h, tx.CustomerName)
		writeField(h, tx.ProductServiceCategory)
	}
	return keyPrefix(e.ID, period) + hex.EncodeToString(h.Sum(nil))
}

func keyPrefix(entrepreneurID uuid.UUID, period string) string {
	return strings.Join([]string{entrepreneurID.String(), period, ""}, ":")
}

func writeField(w io.Writer, value string) {
	_, _ = w.Write([]byte(value))
	_, _ = w.Write([]byte{0})
}
