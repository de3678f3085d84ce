package helper

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/image/draw"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

// Batas ukuran upload logo (guard ringan di helper, controller juga cek)
const MaxUploadSize = int64(5 * 1024 * 1024)

// MIME yang diterima untuk logo event
var allowedImageMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

/* =======================================================================
   Decode gambar (jpeg/png/gif/webp) dari []byte dengan sniff MIME
======================================================================= */

func decodeImage(all []byte) (image.Image, string, error) {
	if len(all) == 0 {
		return nil, "", fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	if !allowedImageMIME[ct] {
		return nil, ct, fmt.Errorf("format tidak didukung: %s", ct)
	}

	var (
		img image.Image
		err error
	)
	switch {
	case strings.Contains(ct, "jpeg"):
		img, err = jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		img, err = png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "gif"):
		img, err = gif.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		img, err = webp.Decode(bytes.NewReader(all))
	default:
		err = fmt.Errorf("format tidak didukung: %s", ct)
	}
	if err != nil {
		return nil, ct, err
	}
	return img, ct, nil
}

func downscaleIfNeeded(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if (maxW <= 0 || w <= maxW) && (maxH <= 0 || h <= maxH) {
		return src
	}

	scaleW := float64(maxW) / float64(w)
	scaleH := float64(maxH) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}

	nw := int(float64(w) * scale)
	nh := int(float64(h) * scale)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// ConvertToWebP decode lalu re-encode ke webp (resize keep-aspect max 1600px)
func ConvertToWebP(file multipart.File) ([]byte, error) {
	all, err := io.ReadAll(io.LimitReader(file, MaxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if int64(len(all)) > MaxUploadSize {
		return nil, fmt.Errorf("file too large (max %d bytes)", MaxUploadSize)
	}

	img, _, err := decodeImage(all)
	if err != nil {
		return nil, err
	}

	img = downscaleIfNeeded(img, 1600, 1600)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

/* =======================================================================
   OSS Service
======================================================================= */

type OSSService struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	Prefix     string // optional: "uploads/"
}

func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := getEnv("ALI_OSS_ENDPOINT")
	ak := getEnv("ALI_OSS_ACCESS_KEY")
	sk := getEnv("ALI_OSS_SECRET_KEY")
	bucketName := getEnv("ALI_OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	client, err := oss.New(endpoint, ak, sk)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	return &OSSService{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

// UploadLogoAsWebP validasi MIME + size, konversi ke webp, upload ke OSS.
// Return public URL objek.
func (s *OSSService) UploadLogoAsWebP(ctx context.Context, fh *multipart.FileHeader, keyPrefix string) (string, error) {
	if fh == nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "File logo tidak ditemukan")
	}
	if fh.Size > MaxUploadSize {
		return "", fiber.NewError(fiber.StatusBadRequest, "Ukuran file maksimal 5MB")
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	webpData, err := ConvertToWebP(src)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "format tidak didukung") {
			return "", fiber.NewError(fiber.StatusBadRequest, "Format gambar tidak didukung (pakai jpg/png/gif/webp)")
		}
		return "", err
	}

	base := strings.TrimSuffix(fh.Filename, filepath.Ext(fh.Filename))
	key := s.buildObjectKey(base + ".webp")
	if keyPrefix != "" {
		key = strings.Trim(keyPrefix, "/") + "/" + key
	}

	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType("image/webp"),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	}
	if err := s.Bucket.PutObject(key, bytes.NewReader(webpData), opts...); err != nil {
		log.Printf("[OSS] putObject gagal key=%s: %v", key, err)
		return "", err
	}
	return s.PublicURL(key), nil
}

func (s *OSSService) DeleteObject(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("empty key")
	}
	return s.Bucket.DeleteObject(key, oss.WithContext(ctx))
}

func (s *OSSService) PublicURL(key string) string {
	ep := strings.TrimPrefix(strings.TrimPrefix(s.Endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, ep, key)
}

func (s *OSSService) buildObjectKey(filename string) string {
	name := slugifyFilename(filename)
	stamp := time.Now().UTC().Format("20060102")
	parts := []string{}
	if s.Prefix != "" {
		parts = append(parts, s.Prefix)
	}
	parts = append(parts, stamp, randHex(8)+"-"+name)
	return strings.Join(parts, "/")
}

func slugifyFilename(s string) string {
	ext := filepath.Ext(s)
	base := strings.TrimSuffix(s, ext)
	var b strings.Builder
	for _, r := range strings.ToLower(base) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		out = "file"
	}
	return out + strings.ToLower(ext)
}

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
