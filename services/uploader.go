package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrEmptyUpload = errors.New("no file provided")

const maxUploadSize = int64(10 * 1024 * 1024)

// StoredFile คือผลการอัปโหลดหนึ่งไฟล์: path ใน storage และ public URL
type StoredFile struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type UploadResult struct {
	Filename string     `json:"filename"`
	File     StoredFile `json:"file"`
	Err      error      `json:"-"`
}

type Uploader struct {
	Store         Storage
	MaxImageWidth int
	Log           *zap.Logger
	Now           func() time.Time
}

func NewUploader(store Storage, maxImageWidth int, log *zap.Logger) *Uploader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Uploader{Store: store, MaxImageWidth: maxImageWidth, Log: log, Now: time.Now}
}

// ObjectKey = folder/<unix_ms>_<สุ่ม 8 hex>.<ext>
func ObjectKey(folder, filename string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(filename))
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	folder = strings.Trim(folder, "/")
	if folder == "" {
		folder = "misc"
	}
	return fmt.Sprintf("%s/%d_%s%s", folder, now.UnixMilli(), suffix, ext)
}

// UploadOne ใช้กับ flow ไฟล์เดียว (สไลด์ บุคลากร พาร์ทเนอร์ สลิป) ผิดพลาด = ล้มทั้ง request
func (u *Uploader) UploadOne(ctx context.Context, folder string, fh *multipart.FileHeader) (StoredFile, error) {
	if fh == nil {
		return StoredFile{}, ErrEmptyUpload
	}
	src, err := fh.Open()
	if err != nil {
		return StoredFile{}, fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	data, err := readAll(src, maxUploadSize)
	if err != nil {
		return StoredFile{}, err
	}
	data, err = PrepareImage(data, fh.Filename, u.MaxImageWidth)
	if err != nil {
		return StoredFile{}, err
	}

	key := ObjectKey(folder, fh.Filename, u.Now())
	if err := u.Store.Put(ctx, key, bytes.NewReader(data), int64(len(data)), contentTypeFor(fh.Filename)); err != nil {
		return StoredFile{}, fmt.Errorf("upload %s: %w", fh.Filename, err)
	}
	return StoredFile{Key: key, URL: u.Store.PublicURL(key)}, nil
}

// UploadMany อัปโหลดทีละไฟล์ ไฟล์ที่พังไม่หยุดไฟล์อื่น
func (u *Uploader) UploadMany(ctx context.Context, folder string, files []*multipart.FileHeader) []UploadResult {
	results := make([]UploadResult, 0, len(files))
	for _, fh := range files {
		res := UploadResult{}
		if fh != nil {
			res.Filename = fh.Filename
		}
		res.File, res.Err = u.UploadOne(ctx, folder, fh)
		if res.Err != nil {
			u.Log.Warn("batch upload item failed", zap.String("folder", folder), zap.String("file", res.Filename), zap.Error(res.Err))
		}
		results = append(results, res)
	}
	return results
}

// Replace ลบ object เดิมก่อนอัปโหลดใหม่ (ใช้กับสไลด์และรูปโครงการ)
func (u *Uploader) Replace(ctx context.Context, folder, oldKey string, fh *multipart.FileHeader) (StoredFile, error) {
	if fh == nil {
		return StoredFile{}, ErrEmptyUpload
	}
	if oldKey != "" {
		if err := u.Store.Delete(ctx, oldKey); err != nil {
			u.Log.Warn("delete previous object failed", zap.String("key", oldKey), zap.Error(err))
		}
	}
	return u.UploadOne(ctx, folder, fh)
}

// Remove ลบแบบ best-effort ใช้ตอนย้อนการอัปโหลดที่ตามด้วย DB error
func (u *Uploader) Remove(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := u.Store.Delete(ctx, key); err != nil {
			u.Log.Warn("delete object failed", zap.String("key", key), zap.Error(err))
		}
	}
}

// Succeeded คืนเฉพาะไฟล์ที่อัปโหลดสำเร็จ ตามลำดับเดิม
func Succeeded(results []UploadResult) []StoredFile {
	out := make([]StoredFile, 0, len(results))
	for _, r := range results {
		if r.Err == nil {
			out = append(out, r.File)
		}
	}
	return out
}

type FailedUpload struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

// Failures ใช้ตอบกลับให้ผู้ใช้รู้ว่าไฟล์ไหนไม่ผ่าน
func Failures(results []UploadResult) []FailedUpload {
	out := make([]FailedUpload, 0)
	for _, r := range results {
		if r.Err != nil {
			out = append(out, FailedUpload{Filename: r.Filename, Error: r.Err.Error()})
		}
	}
	return out
}
