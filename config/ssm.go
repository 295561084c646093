package config

import (
	"context"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// ParameterStore is the subset of the SSM client used to read configuration.
type ParameterStore interface {
	GetParametersByPath(ctx context.Context, params *ssm.GetParametersByPathInput, optFns ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error)
}

// NewParameterStore builds an SSM client from the default AWS credential chain.
func NewParameterStore(ctx context.Context, region string) (ParameterStore, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "load aws config")
	}
	return ssm.NewFromConfig(cfg), nil
}

// OverlayParameters fills keys missing from c with the parameters stored under prefix.
// A parameter named /club/prod/DATABASE_URL becomes the key DATABASE_URL. Values already
// present in the environment win.
func OverlayParameters(ctx context.Context, store ParameterStore, prefix string, c map[string]string) (int, error) {
	input := &ssm.GetParametersByPathInput{
		Path:           aws.String(prefix),
		Recursive:      aws.Bool(true),
		WithDecryption: aws.Bool(true),
	}

	applied := 0
	for {
		out, err := store.GetParametersByPath(ctx, input)
		if err != nil {
			return applied, errors.Wrapf(err, "get parameters under %s", prefix)
		}

		for _, p := range out.Parameters {
			key := strings.ToUpper(path.Base(aws.ToString(p.Name)))
			if key == "" || key == "/" || key == "." {
				continue
			}
			if existing, ok := c[key]; ok && existing != "" {
				continue
			}
			c[key] = aws.ToString(p.Value)
			applied++
		}

		if out.NextToken == nil || aws.ToString(out.NextToken) == "" {
			break
		}
		input.NextToken = out.NextToken
	}

	log.Info().Str("path", prefix).Int("applied", applied).Msg("loaded configuration from SSM")
	return applied, nil
}
