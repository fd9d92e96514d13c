package sqlstore

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/ghayaruae/crm-server/internal/database"
	"github.com/ghayaruae/crm-server/internal/model"
	"github.com/ghayaruae/crm-server/internal/query"
	"github.com/ghayaruae/crm-server/internal/repository"
)

const documentsTable = "business__documents"

var documentColumns = []string{
	"document_id",
	"business_id",
	"filename",
	"storage_path",
	"size",
	"content_type",
	"uploaded_by",
	"created_at",
}

func scanDocument(row scanner) (model.BusinessDocument, error) {
	var d model.BusinessDocument
	err := row.Scan(
		&d.DocumentID,
		&d.BusinessID,
		&d.Filename,
		&d.StoragePath,
		&d.Size,
		&d.ContentType,
		&d.UploadedBy,
		&d.CreatedAt,
	)
	return d, err
}

// DocumentStore is the SQL implementation of repository.DocumentRepository.
// It holds metadata only; object bytes live in object storage.
type DocumentStore struct {
	store
}

// NewDocumentStore creates a DocumentStore.
func NewDocumentStore(db database.DB, d query.Dialect) *DocumentStore {
	return &DocumentStore{store{db: db, dialect: d}}
}

var _ repository.DocumentRepository = (*DocumentStore)(nil)

// Create inserts a document row. Keys are generated by the caller, so the
// stored record is the input as written.
func (r *DocumentStore) Create(ctx context.Context, doc *model.BusinessDocument) (*model.BusinessDocument, error) {
	ins := r.sb().Insert(documentsTable).
		Columns(documentColumns...).
		Values(
			doc.DocumentID,
			doc.BusinessID,
			doc.Filename,
			doc.StoragePath,
			doc.Size,
			doc.ContentType,
			doc.UploadedBy,
			doc.CreatedAt,
		)
	if _, err := r.exec(ctx, ins); err != nil {
		return nil, err
	}
	out := *doc
	return &out, nil
}

// FindByID fetches a single document by its ID.
func (r *DocumentStore) FindByID(ctx context.Context, documentID string) (*model.BusinessDocument, error) {
	sel := r.sb().Select(documentColumns...).From(documentsTable).Where(sq.Eq{"document_id": documentID})
	text, args, err := sel.ToSql()
	if err != nil {
		return nil, err
	}
	d, err := scanDocument(r.db.QueryRowContext(ctx, text, args...))
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListByBusiness returns a business's documents, newest first.
func (r *DocumentStore) ListByBusiness(ctx context.Context, businessID int64) ([]model.BusinessDocument, error) {
	return list(ctx, r.store,
		sq.Select(documentColumns...).From(documentsTable).
			Where(sq.Eq{"business_id": businessID}).
			OrderBy("created_at DESC", "document_id DESC"),
		scanDocument)
}

// Delete removes a document by ID. It does not return an error if the row does not exist.
func (r *DocumentStore) Delete(ctx context.Context, documentID string) error {
	_, err := r.exec(ctx, r.sb().Delete(documentsTable).Where(sq.Eq{"document_id": documentID}))
	return err
}
