package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// ParameterLister is the subset of the SSM client used to read parameters
type ParameterLister interface {
	GetParametersByPath(ctx context.Context, params *ssm.GetParametersByPathInput, optFns ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error)
}

// NewSSMClient builds an SSM client from the default AWS credential chain
func NewSSMClient(ctx context.Context) (*ssm.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return ssm.NewFromConfig(cfg), nil
}

// LoadSSM reads every parameter under prefix (decrypted) and returns them keyed
// by their name relative to the prefix, upper-cased with "/" and "-" turned
// into "_". "/portfolio/prod/mail-password" under "/portfolio/prod" becomes
// MAIL_PASSWORD.
func LoadSSM(ctx context.Context, client ParameterLister, prefix string) (map[string]string, error) {
	prefix = "/" + strings.Trim(prefix, "/")
	out := make(map[string]string)

	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(prefix),
		Recursive:      aws.Bool(true),
		WithDecryption: aws.Bool(true),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("read ssm parameters under %s: %w", prefix, err)
		}
		for _, p := range page.Parameters {
			key := parameterKey(prefix, aws.ToString(p.Name))
			if key == "" {
				continue
			}
			out[key] = aws.ToString(p.Value)
		}
	}

	return out, nil
}

func parameterKey(prefix, name string) string {
	rel := strings.Trim(strings.TrimPrefix(name, prefix), "/")
	if rel == "" {
		return ""
	}
	rel = strings.NewReplacer("/", "_", "-", "_", ".", "_").Replace(rel)
	return strings.ToUpper(rel)
}
