package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Storage คือ object storage แบบ flat namespace แยกโฟลเดอร์ตามฟีเจอร์ (staff/, partners/, ...)
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

// LocalStorage เขียนไฟล์ลงดิสก์ และเสิร์ฟผ่าน /uploads
type LocalStorage struct {
	Dir        string
	PublicBase string // เช่น "http://localhost:8080/uploads"
}

func NewLocalStorage(dir, publicBase string) *LocalStorage {
	return &LocalStorage{Dir: dir, PublicBase: strings.TrimRight(publicBase, "/")}
}

func (s *LocalStorage) path(key string) (string, error) {
	clean := filepath.Clean("/" + key)
	if clean == "/" {
		return "", fmt.Errorf("empty object key")
	}
	return filepath.Join(s.Dir, filepath.FromSlash(clean)), nil
}

func (s *LocalStorage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	full, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("mkdir uploads dir: %w", err)
	}
	f, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(full)
		return fmt.Errorf("write file: %w", err)
	}
	return f.Close()
}

func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	full, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *LocalStorage) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	return s.PublicBase + "/" + strings.TrimLeft(key, "/")
}
