package storage

import (
	"context"
	"testing"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinURL(t *testing.T) {
	cases := []struct {
		base, key, want string
	}{
		{"/media/", "projects/a.png", "/media/projects/a.png"},
		{"/media", "/projects/a.png", "/media/projects/a.png"},
		{"https://cdn.example.com/", "gallery/tech fest.jpg", "https://cdn.example.com/gallery/tech%20fest.jpg"},
		{"", "resume.pdf", "/resume.pdf"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, joinURL(tc.base, tc.key), "base=%q key=%q", tc.base, tc.key)
	}
}

func TestNewFromConfig(t *testing.T) {
	ctx := context.Background()

	backend, err := NewFromConfig(ctx, map[string]string{})
	require.NoError(t, err)
	u, err := backend.URL(ctx, "profile/me.jpg")
	require.NoError(t, err)
	assert.Equal(t, "/media/profile/me.jpg", u)

	_, err = NewFromConfig(ctx, map[string]string{"MEDIA_BACKEND": "s3"})
	assert.True(t, errs.IsConfigMissing(err))

	_, err = NewFromConfig(ctx, map[string]string{"MEDIA_BACKEND": "ftp"})
	assert.Error(t, err)
}

func TestS3PublicURL(t *testing.T) {
	s := &S3{cfg: S3Config{Bucket: "portfolio-media", Region: "us-east-1"}}
	u, err := s.URL(context.Background(), "projects/a.png")
	require.NoError(t, err)
	assert.Equal(t, "https://portfolio-media.s3.us-east-1.amazonaws.com/projects/a.png", u)

	s = &S3{cfg: S3Config{Bucket: "portfolio-media", PublicBaseURL: "https://media.example.com"}}
	u, err = s.URL(context.Background(), "projects/a.png")
	require.NoError(t, err)
	assert.Equal(t, "https://media.example.com/projects/a.png", u)
}
