// Package storage keeps business document bytes in an S3-compatible object
// store. Transfers are streamed; nothing touches local disk.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"
	"unicode"
)

// PutObjectOptions describe an upload. Size is the exact byte count, or -1
// when unknown so the backend switches to multipart streaming.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is the object store used for business documents.
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get streams an object. The caller closes the reader.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited download URL that needs no credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// DocumentKey builds the object key of a business document:
// businesses/<business id>/<document id>-<clean filename>.
func DocumentKey(businessID int64, documentID, filename string) string {
	return path.Join("businesses", fmt.Sprint(businessID), documentID+"-"+CleanFilename(filename))
}

// CleanFilename keeps the base name of an uploaded file and replaces every
// rune outside letters, digits, dot, dash and underscore with an underscore.
func CleanFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, `\`, "/"))
	if name == "." || name == "/" || name == "" {
		return "file"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
