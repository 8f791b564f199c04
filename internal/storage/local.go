package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalStore — локальное файловое хранилище загрузок (аватары).
// Возвращает стабильные относительные пути "/uploads/<file>",
// сами файлы раздаются статикой gin.
type LocalStore struct {
	RootDir string
}

func NewLocalStore(rootDir string) (*LocalStore, error) {
	root := filepath.Clean(rootDir)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &LocalStore{RootDir: root}, nil
}

func (s *LocalStore) SaveMultipart(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// uuid вместо оригинального имени, расширение сохраняем
	ext := filepath.Ext(fh.Filename)
	name := "avatar-" + uuid.NewString() + ext

	dst, err := os.Create(filepath.Join(s.RootDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

// Abs — абсолютный путь файла по его относительному пути из БД.
func (s *LocalStore) Abs(relPath string) string {
	return filepath.Join(s.RootDir, filepath.Base(relPath))
}
