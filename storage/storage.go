package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/rpupo63/portfolio-site-backend/config"
	"github.com/rpupo63/portfolio-site-backend/errs"
)

// Backend turns a stored file key into an absolute URL a browser can fetch
type Backend interface {
	URL(ctx context.Context, key string) (string, error)
}

// PublicBase serves files from a fixed base URL, e.g. "/media/" behind the
// web server or a CDN origin.
type PublicBase struct {
	base string
}

func NewPublicBase(base string) PublicBase {
	return PublicBase{base: base}
}

func (p PublicBase) URL(_ context.Context, key string) (string, error) {
	return joinURL(p.base, key), nil
}

// NewFromConfig selects the backend named by MEDIA_BACKEND
func NewFromConfig(ctx context.Context, c map[string]string) (Backend, error) {
	switch backend := strings.ToLower(config.GetString(c, "MEDIA_BACKEND", "local")); backend {
	case "local":
		return NewPublicBase(config.GetString(c, "MEDIA_BASE_URL", "/media/")), nil
	case "s3":
		bucket := config.GetString(c, "MEDIA_S3_BUCKET", "")
		if bucket == "" {
			return nil, errs.NewConfigMissingError("MEDIA_S3_BUCKET")
		}
		return NewS3(ctx, S3Config{
			Bucket:         bucket,
			Region:         config.GetString(c, "MEDIA_S3_REGION", ""),
			PublicBaseURL:  config.GetString(c, "MEDIA_S3_PUBLIC_BASE_URL", ""),
			PresignMinutes: config.GetInt(c, "MEDIA_S3_PRESIGN_MINUTES", 0),
		})
	default:
		return nil, errs.NewConfigInvalidError("MEDIA_BACKEND", fmt.Sprintf("unsupported value %q", backend))
	}
}

// joinURL joins base and key with exactly one slash, escaping each key segment
func joinURL(base, key string) string {
	key = strings.TrimLeft(key, "/")
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	escaped := strings.Join(segments, "/")
	if base == "" {
		return "/" + escaped
	}
	return strings.TrimRight(base, "/") + "/" + escaped
}
