package client

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/young-sensey/dochub/internal/client/models"
)

// ListFilter narrows a document listing. CategoryID is empty for all
// documents, the literal "null" for uncategorized ones, or a numeric id.
// The value is passed to the server verbatim.
type ListFilter struct {
	CategoryID string
}

// Attachment is a file included in a document creation request.
type Attachment struct {
	Name string
	Data io.Reader
}

// Client is the DocHub API surface the rest of the application talks to.
type Client interface {
	Login(ctx context.Context, login, password string) (string, models.User, error)
	Register(ctx context.Context, login, password string) error

	ListDocuments(ctx context.Context, filter ListFilter) ([]models.Document, error)
	GetDocument(ctx context.Context, id int) (models.Document, error)
	CreateDocument(ctx context.Context, fields models.DocumentFields, attachment *Attachment) (models.Document, error)
	UpdateDocument(ctx context.Context, id int, fields models.DocumentFields) (models.Document, error)
	DeleteDocument(ctx context.Context, id int) error
	DownloadAttachment(ctx context.Context, id int) ([]byte, error)

	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id int) (models.Category, error)
	CreateCategory(ctx context.Context, fields models.CategoryFields) (models.Category, error)
	UpdateCategory(ctx context.Context, id int, fields models.CategoryFields) (models.Category, error)
	DeleteCategory(ctx context.Context, id int) error
}

// DownloadName derives a local filename for a downloaded attachment: the
// final segment of the stored file path, or document_<id> when no path is
// recorded.
func DownloadName(filePath string, id int) string {
	if filePath == "" {
		return fmt.Sprintf("document_%d", id)
	}
	return path.Base(filePath)
}
