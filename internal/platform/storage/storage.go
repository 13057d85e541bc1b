package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BlobStore keeps binary attachment content outside the database.
type BlobStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// AttachmentKey builds the object key of a statement attachment.
// Example: statements/company_1/partner_7/2024/03/<uuid>_Account_Statement_Acme_2024-03-07.pdf
func AttachmentKey(companyID, partnerID int64, fileName string, now time.Time) string {
	safe := strings.NewReplacer("/", "-", "\\", "-", " ", "_").Replace(fileName)
	return fmt.Sprintf("statements/company_%d/partner_%d/%s/%s_%s",
		companyID, partnerID, now.Format("2006/01"), uuid.NewString(), safe)
}
