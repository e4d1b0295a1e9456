package services

import (
	"context"
	"time"

	"github.com/young-sensey/dochub/internal/client/client"
	"github.com/young-sensey/dochub/internal/client/models"
)

// documentResource binds the generic controller to the document endpoints.
type documentResource struct {
	api client.Client
}

func (r documentResource) List(ctx context.Context, filter client.ListFilter) ([]models.Document, error) {
	return r.api.ListDocuments(ctx, filter)
}

func (r documentResource) Create(ctx context.Context, fields models.DocumentFields, attachment *client.Attachment) (models.Document, error) {
	return r.api.CreateDocument(ctx, fields, attachment)
}

func (r documentResource) Update(ctx context.Context, id int, fields models.DocumentFields) (models.Document, error) {
	return r.api.UpdateDocument(ctx, id, fields)
}

func (r documentResource) Delete(ctx context.Context, id int) error {
	return r.api.DeleteDocument(ctx, id)
}

// categoryResource binds the generic controller to the category endpoints.
// Attachments are a document-creation feature only.
type categoryResource struct {
	api client.Client
}

func (r categoryResource) List(ctx context.Context, _ client.ListFilter) ([]models.Category, error) {
	return r.api.ListCategories(ctx)
}

func (r categoryResource) Create(ctx context.Context, fields models.CategoryFields, attachment *client.Attachment) (models.Category, error) {
	if attachment != nil {
		return models.Category{}, client.ErrAttachmentUnsupported
	}
	return r.api.CreateCategory(ctx, fields)
}

func (r categoryResource) Update(ctx context.Context, id int, fields models.CategoryFields) (models.Category, error) {
	return r.api.UpdateCategory(ctx, id, fields)
}

func (r categoryResource) Delete(ctx context.Context, id int) error {
	return r.api.DeleteCategory(ctx, id)
}

// NewDocumentController builds the per-screen controller for documents.
func NewDocumentController(api client.Client, ttl time.Duration) *Controller[models.Document, models.DocumentFields] {
	return NewController[models.Document, models.DocumentFields](documentResource{api: api}, "document", ttl)
}

// NewCategoryController builds the per-screen controller for categories.
func NewCategoryController(api client.Client, ttl time.Duration) *Controller[models.Category, models.CategoryFields] {
	return NewController[models.Category, models.CategoryFields](categoryResource{api: api}, "category", ttl)
}
