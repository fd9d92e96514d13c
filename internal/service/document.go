package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ghayaruae/crm-server/internal/clock"
	"github.com/ghayaruae/crm-server/internal/model"
	"github.com/ghayaruae/crm-server/internal/repository"
	"github.com/ghayaruae/crm-server/internal/storage"
)

// ErrReaderNil is returned by Upload when no file content is given.
var ErrReaderNil = errors.New("reader is nil")

// DownloadURLExpiry bounds the presigned links returned by List.
const DownloadURLExpiry = 15 * time.Minute

// Upload describes one file sent for a business.
type Upload struct {
	BusinessID  int64
	Filename    string
	ContentType string
	// Size is the byte count, or -1 when unknown.
	Size int64
	Body io.Reader
}

// DocumentService stores files against the caller's businesses.
type DocumentService interface {
	// Upload writes the object first, then its metadata row. The object is
	// removed again if the row cannot be saved.
	Upload(ctx context.Context, salesmanID int64, up Upload) (*model.BusinessDocument, error)
	// List returns a business's documents with presigned download links.
	List(ctx context.Context, salesmanID, businessID int64) ([]model.BusinessDocument, error)
	// Open streams a document. The caller closes the reader.
	Open(ctx context.Context, salesmanID int64, documentID string) (*model.BusinessDocument, io.ReadCloser, error)
	// Delete removes the object, then its row.
	Delete(ctx context.Context, salesmanID int64, documentID string) error
}

type documentService struct {
	store      storage.Storage
	docs       repository.DocumentRepository
	businesses repository.BusinessRepository
	clock      clock.Clock
	log        zerolog.Logger
}

// NewDocumentService constructs a DocumentService.
func NewDocumentService(store storage.Storage, docs repository.DocumentRepository, businesses repository.BusinessRepository, c clock.Clock, log zerolog.Logger) DocumentService {
	return &documentService{store: store, docs: docs, businesses: businesses, clock: c, log: log}
}

func (s *documentService) Upload(ctx context.Context, salesmanID int64, up Upload) (*model.BusinessDocument, error) {
	if up.Body == nil {
		return nil, ErrReaderNil
	}
	if err := ensureOwned(ctx, s.businesses, salesmanID, up.BusinessID); err != nil {
		return nil, err
	}

	id := uuid.New().String()
	key := storage.DocumentKey(up.BusinessID, id, up.Filename)
	info, err := s.store.Put(ctx, key, up.Body, storage.PutObjectOptions{
		Size:        up.Size,
		ContentType: up.ContentType,
		Metadata:    map[string]string{"original-filename": up.Filename},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	doc := &model.BusinessDocument{
		DocumentID:  id,
		BusinessID:  up.BusinessID,
		Filename:    storage.CleanFilename(up.Filename),
		StoragePath: info.Key,
		Size:        info.Size,
		ContentType: info.ContentType,
		UploadedBy:  salesmanID,
		CreatedAt:   s.clock.Now().UTC(),
	}
	stored, err := s.docs.Create(ctx, doc)
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			s.log.Error().Err(delErr).Str("key", key).Msg("rollback delete failed")
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *documentService) List(ctx context.Context, salesmanID, businessID int64) ([]model.BusinessDocument, error) {
	if err := ensureOwned(ctx, s.businesses, salesmanID, businessID); err != nil {
		return nil, err
	}
	docs, err := s.docs.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	for i := range docs {
		url, err := s.store.PresignGet(ctx, docs[i].StoragePath, DownloadURLExpiry)
		if err != nil {
			return nil, fmt.Errorf("presign %s: %w", docs[i].DocumentID, err)
		}
		docs[i].URL = url
	}
	return docs, nil
}

func (s *documentService) Open(ctx context.Context, salesmanID int64, documentID string) (*model.BusinessDocument, io.ReadCloser, error) {
	doc, err := s.find(ctx, salesmanID, documentID)
	if err != nil {
		return nil, nil, err
	}
	rc, _, err := s.store.Get(ctx, doc.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("read storage: %w", err)
	}
	return doc, rc, nil
}

func (s *documentService) Delete(ctx context.Context, salesmanID int64, documentID string) error {
	doc, err := s.find(ctx, salesmanID, documentID)
	if err != nil {
		return err
	}
	// storage goes first so a failure leaves the row pointing at a live object
	if err := s.store.Delete(ctx, doc.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return s.docs.Delete(ctx, documentID)
}

// find loads a document and hides documents of businesses the caller does
// not own.
func (s *documentService) find(ctx context.Context, salesmanID int64, documentID string) (*model.BusinessDocument, error) {
	if documentID == "" {
		return nil, invalid("document_id", "is required")
	}
	what := "document " + documentID
	doc, err := s.docs.FindByID(ctx, documentID)
	if err != nil {
		return nil, notFound(err, what)
	}
	ok, err := s.businesses.Owned(ctx, doc.BusinessID, salesmanID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return doc, nil
}
