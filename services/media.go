package services

import (
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// MediaStore keeps uploaded post images on local disk. Stored names are
// relative to the media root and served back under /media/.
type MediaStore struct {
	dir string
}

func NewMediaStore(dir string) (*MediaStore, error) {
	if err := os.MkdirAll(filepath.Join(dir, "posts"), 0o755); err != nil {
		return nil, err
	}
	return &MediaStore{dir: dir}, nil
}

func (ms *MediaStore) Dir() string {
	return ms.dir
}

// Save stores the upload under a fresh blob name and returns the relative
// path to persist on the post.
func (ms *MediaStore) Save(header *multipart.FileHeader) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.NewString() + filepath.Ext(header.Filename)
	dst, err := os.Create(filepath.Join(ms.dir, "posts", name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return path.Join("posts", name), nil
}

func (ms *MediaStore) Exists(relPath string) bool {
	if relPath == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(ms.dir, filepath.FromSlash(relPath)))
	return err == nil
}
