package config

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeParameterLister struct {
	pages [][]types.Parameter
	calls int
	paths []string
	err   error
}

func (f *fakeParameterLister) GetParametersByPath(_ context.Context, in *ssm.GetParametersByPathInput, _ ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.paths = append(f.paths, aws.ToString(in.Path))
	out := &ssm.GetParametersByPathOutput{Parameters: f.pages[f.calls]}
	f.calls++
	if f.calls < len(f.pages) {
		out.NextToken = aws.String("next")
	}
	return out, nil
}

func TestParameterKey(t *testing.T) {
	assert.Equal(t, "MAIL_PASSWORD", parameterKey("/portfolio/prod", "/portfolio/prod/mail-password"))
	assert.Equal(t, "MEDIA_S3_BUCKET", parameterKey("/portfolio/prod", "/portfolio/prod/media/s3.bucket"))
	assert.Equal(t, "", parameterKey("/portfolio/prod", "/portfolio/prod"))
}

func TestLoadSSMReadsEveryPage(t *testing.T) {
	lister := &fakeParameterLister{pages: [][]types.Parameter{
		{{Name: aws.String("/portfolio/prod/mail-server"), Value: aws.String("smtp.example.com")}},
		{{Name: aws.String("/portfolio/prod/mail-password"), Value: aws.String("secret")}},
	}}

	got, err := LoadSSM(context.Background(), lister, "portfolio/prod/")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"MAIL_SERVER":   "smtp.example.com",
		"MAIL_PASSWORD": "secret",
	}, got)
	assert.Equal(t, 2, lister.calls)
	assert.Equal(t, "/portfolio/prod", lister.paths[0])
}

func TestLoadSSMPropagatesErrors(t *testing.T) {
	_, err := LoadSSM(context.Background(), &fakeParameterLister{err: errors.New("denied")}, "/portfolio")
	assert.ErrorContains(t, err, "denied")
}
