package services

import (
	"context"

	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rpupo63/portfolio-site-backend/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// MediaResolver turns a MediaRef into the URL to display
type MediaResolver struct {
	backend storage.Backend
	logger  zerolog.Logger
}

func NewMediaResolver(backend storage.Backend) MediaResolver {
	return MediaResolver{
		backend: backend,
		logger:  log.With().Str("service", "MediaResolver").Logger(),
	}
}

// Resolve returns "" for an empty reference, an external URL verbatim, and
// for a stored file the backend URL, falling back to the raw key when the
// backend cannot produce one.
func (m MediaResolver) Resolve(ctx context.Context, ref models.MediaRef) string {
	switch ref.Kind() {
	case models.MediaExternal:
		return ref.String()
	case models.MediaStored:
		if m.backend == nil {
			return ref.String()
		}
		u, err := m.backend.URL(ctx, ref.String())
		if err != nil || u == "" {
			if err != nil {
				m.logger.Warn().Err(err).Str("key", ref.String()).Msg("Falling back to raw media key")
			}
			return ref.String()
		}
		return u
	default:
		return ""
	}
}

// CertificateLink prefers the uploaded file over the bare URL
func (m MediaResolver) CertificateLink(ctx context.Context, c models.Certificate) string {
	if !c.CertificateFile.IsZero() {
		return m.Resolve(ctx, c.CertificateFile)
	}
	return c.CertificateURL
}
