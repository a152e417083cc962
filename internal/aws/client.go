// Package aws implements the discovery collaborators against the AWS APIs.
// Each resource family gets a thin adapter that fetches a flat list and
// converts it to the internal record types; topology assembly happens
// elsewhere.
package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/apigateway"
	"github.com/aws/aws-sdk-go-v2/service/apigatewayv2"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Client wraps the AWS SDK clients used for discovery
type Client struct {
	EC2          *ec2.Client
	Lambda       *lambda.Client
	Route53      *route53.Client
	APIGateway   *apigateway.Client
	APIGatewayV2 *apigatewayv2.Client
	STS          *sts.Client

	profile string
	region  string
}

// ClientOption allows customizing the AWS Client
type ClientOption func(*Client)

// WithProfile sets the AWS profile for the client
func WithProfile(profile string) ClientOption {
	return func(c *Client) {
		c.profile = profile
	}
}

// WithRegion sets the AWS region for the client
func WithRegion(region string) ClientOption {
	return func(c *Client) {
		c.region = region
	}
}

// NewClient creates a new AWS Client with the given options
func NewClient(ctx context.Context, opts ...ClientOption) (*Client, error) {
	c := &Client{}

	for _, opt := range opts {
		opt(c)
	}

	var configOpts []func(*config.LoadOptions) error

	if c.profile != "" {
		configOpts = append(configOpts, config.WithSharedConfigProfile(c.profile))
	}

	if c.region != "" {
		configOpts = append(configOpts, config.WithRegion(c.region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, configOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config: %w", err)
	}

	if c.region == "" {
		c.region = cfg.Region
	}

	c.EC2 = ec2.NewFromConfig(cfg)
	c.Lambda = lambda.NewFromConfig(cfg)
	c.Route53 = route53.NewFromConfig(cfg)
	c.APIGateway = apigateway.NewFromConfig(cfg)
	c.APIGatewayV2 = apigatewayv2.NewFromConfig(cfg)
	c.STS = sts.NewFromConfig(cfg)

	return c, nil
}

// Region returns the region the client resolved at construction
func (c *Client) Region() string {
	return c.region
}

// deref safely dereferences a string pointer
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// derefBool safely dereferences a bool pointer
func derefBool(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}

// derefInt64 safely dereferences an int64 pointer
func derefInt64(i *int64) int64 {
	if i == nil {
		return 0
	}
	return *i
}
