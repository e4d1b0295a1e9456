package services

import (
	"context"
	"io"

	"github.com/young-sensey/dochub/internal/client/client"
	"github.com/young-sensey/dochub/internal/client/models"
)

// fakeClient implements client.Client for unit tests: preset results,
// captured arguments.
type fakeClient struct {
	LoginToken string
	LoginUser  models.User
	LoginErr   error

	RegisterErr error

	ListDocsRet []models.Document
	ListDocsErr error

	GetDocRet models.Document
	GetDocErr error

	CreateDocRet models.Document
	CreateDocErr error

	UpdateDocRet models.Document
	UpdateDocErr error

	DeleteDocErr error

	DownloadRet []byte
	DownloadErr error

	ListCatsRet []models.Category
	ListCatsErr error

	GetCatRet models.Category
	GetCatErr error

	CreateCatRet models.Category
	CreateCatErr error

	UpdateCatRet models.Category
	UpdateCatErr error

	DeleteCatErr error

	LastLogin          string
	LastPassword       string
	LastFilter         client.ListFilter
	LastDocFields      models.DocumentFields
	LastCatFields      models.CategoryFields
	LastID             int
	LastAttachmentName string
	LastAttachmentData []byte
	DeleteCalls        int
}

func (f *fakeClient) Login(ctx context.Context, login, password string) (string, models.User, error) {
	f.LastLogin = login
	f.LastPassword = password
	return f.LoginToken, f.LoginUser, f.LoginErr
}

func (f *fakeClient) Register(ctx context.Context, login, password string) error {
	f.LastLogin = login
	f.LastPassword = password
	return f.RegisterErr
}

func (f *fakeClient) ListDocuments(ctx context.Context, filter client.ListFilter) ([]models.Document, error) {
	f.LastFilter = filter
	return append([]models.Document(nil), f.ListDocsRet...), f.ListDocsErr
}

func (f *fakeClient) GetDocument(ctx context.Context, id int) (models.Document, error) {
	f.LastID = id
	return f.GetDocRet, f.GetDocErr
}

func (f *fakeClient) CreateDocument(ctx context.Context, fields models.DocumentFields, attachment *client.Attachment) (models.Document, error) {
	f.LastDocFields = fields
	if attachment != nil {
		f.LastAttachmentName = attachment.Name
		f.LastAttachmentData, _ = io.ReadAll(attachment.Data)
	}
	return f.CreateDocRet, f.CreateDocErr
}

func (f *fakeClient) UpdateDocument(ctx context.Context, id int, fields models.DocumentFields) (models.Document, error) {
	f.LastID = id
	f.LastDocFields = fields
	return f.UpdateDocRet, f.UpdateDocErr
}

func (f *fakeClient) DeleteDocument(ctx context.Context, id int) error {
	f.LastID = id
	f.DeleteCalls++
	return f.DeleteDocErr
}

func (f *fakeClient) DownloadAttachment(ctx context.Context, id int) ([]byte, error) {
	f.LastID = id
	return f.DownloadRet, f.DownloadErr
}

func (f *fakeClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	return append([]models.Category(nil), f.ListCatsRet...), f.ListCatsErr
}

func (f *fakeClient) GetCategory(ctx context.Context, id int) (models.Category, error) {
	f.LastID = id
	return f.GetCatRet, f.GetCatErr
}

func (f *fakeClient) CreateCategory(ctx context.Context, fields models.CategoryFields) (models.Category, error) {
	f.LastCatFields = fields
	return f.CreateCatRet, f.CreateCatErr
}

func (f *fakeClient) UpdateCategory(ctx context.Context, id int, fields models.CategoryFields) (models.Category, error) {
	f.LastID = id
	f.LastCatFields = fields
	return f.UpdateCatRet, f.UpdateCatErr
}

func (f *fakeClient) DeleteCategory(ctx context.Context, id int) error {
	f.LastID = id
	f.DeleteCalls++
	return f.DeleteCatErr
}
