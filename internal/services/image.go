package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/GregMSThompson/startpage/internal/blob"
	"github.com/GregMSThompson/startpage/internal/dto"
	"github.com/GregMSThompson/startpage/internal/errs"
	"github.com/GregMSThompson/startpage/pkg/logger"
)

type imageStore interface {
	Put(ctx context.Context, key string, r io.Reader, opts blob.PutOptions) (blob.Info, error)
}

// pastedImageTypes maps the MIME types accepted from a pasted data URI to
// the extension of the stored file.
var pastedImageTypes = map[string]string{
	"image/png":     "png",
	"image/jpeg":    "jpg",
	"image/jpg":     "jpg",
	"image/gif":     "gif",
	"image/webp":    "webp",
	"image/svg+xml": "svg",
}

// fallbackPastedExt is used when the data URI declares no MIME type at all.
const fallbackPastedExt = "png"

var (
	unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)
	repeatedDots        = regexp.MustCompile(`\.{2,}`)
)

type imageResolver struct {
	images imageStore
	newID  func() string
}

func NewImageResolver(images imageStore) *imageResolver {
	return &imageResolver{
		images: images,
		newID:  func() string { return uuid.New().String() },
	}
}

// Resolve picks the image reference to store. Sources are checked in the
// order preset, upload, paste and the last one present wins; current is kept
// when none applies.
func (r *imageResolver) Resolve(ctx context.Context, current string, in dto.ImageInput) (string, error) {
	image := current

	if preset := strings.TrimSpace(in.Preset); preset != "" {
		image = preset
	}

	if up := in.Upload; up != nil && up.Body != nil && strings.TrimSpace(up.Filename) != "" {
		key := r.newID() + "_" + cleanFilename(up.Filename)
		if _, err := r.images.Put(ctx, key, up.Body, blob.PutOptions{ContentType: up.ContentType}); err != nil {
			return "", errs.NewImageError(key, "failed to store uploaded image", err)
		}
		image = key
	}

	if strings.Contains(in.Pasted, "base64,") {
		key, err := r.storePasted(ctx, in.Pasted)
		if err != nil {
			return "", err
		}
		if key != "" {
			image = key
		}
	}

	return image, nil
}

// storePasted decodes and stores a data URI. A rejected paste returns an
// empty key and no error.
func (r *imageResolver) storePasted(ctx context.Context, dataURI string) (string, error) {
	log := logger.FromContext(ctx)

	header, encoded, _ := strings.Cut(dataURI, ",")
	mimeType := pastedMIMEType(header)
	ext := fallbackPastedExt
	if mimeType != "" {
		var ok bool
		ext, ok = pastedImageTypes[mimeType]
		if !ok {
			log.Warn("pasted image rejected", "reason", "unsupported_type", "mime_type", mimeType)
			return "", nil
		}
	}

	data, err := base64.StdEncoding.DecodeString(stripWhitespace(encoded))
	if err != nil {
		log.Warn("pasted image rejected", "reason", "invalid_base64", "error", err)
		return "", nil
	}
	if len(data) == 0 {
		log.Warn("pasted image rejected", "reason", "empty_payload")
		return "", nil
	}

	key := r.newID() + "." + ext
	contentType := mimeType
	if contentType == "" {
		contentType = "image/png"
	}
	if _, err := r.images.Put(ctx, key, bytes.NewReader(data), blob.PutOptions{ContentType: contentType}); err != nil {
		return "", errs.NewImageError(key, "failed to store pasted image", err)
	}
	return key, nil
}

// pastedMIMEType extracts the media type from "data:image/png;base64".
func pastedMIMEType(header string) string {
	header = strings.TrimSpace(header)
	if i := strings.Index(strings.ToLower(header), "data:"); i >= 0 {
		header = header[i+len("data:"):]
	}
	mediaType, _, _ := strings.Cut(header, ";")
	return strings.ToLower(strings.TrimSpace(mediaType))
}

func cleanFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = repeatedDots.ReplaceAllString(name, ".")
	name = strings.TrimLeft(name, ".")
	if name == "" {
		return "upload"
	}
	return name
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
}
