package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/lambda"
	lambdatypes "github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"go.uber.org/zap"

	"github.com/byunjuneseok/cloud-map/internal/logging"
	pkgtypes "github.com/byunjuneseok/cloud-map/pkg/types"
)

// DiscoverFunctions returns VPC-attached Lambda functions, optionally
// filtered by VPC. Functions with no VPC config are skipped; they have no
// place in a network topology.
func (c *Client) DiscoverFunctions(ctx context.Context, vpcID string) ([]pkgtypes.LambdaFunction, error) {
	var functions []pkgtypes.LambdaFunction

	paginator := lambda.NewListFunctionsPaginator(c.Lambda, &lambda.ListFunctionsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}

		for _, fn := range page.Functions {
			if fn.VpcConfig == nil || deref(fn.VpcConfig.VpcId) == "" {
				continue
			}
			if vpcID != "" && deref(fn.VpcConfig.VpcId) != vpcID {
				continue
			}
			functions = append(functions, c.toLambdaFunction(ctx, fn))
		}
	}

	return functions, nil
}

func (c *Client) toLambdaFunction(ctx context.Context, fn lambdatypes.FunctionConfiguration) pkgtypes.LambdaFunction {
	// Tag lookup is best-effort enrichment; a failure downgrades to empty
	// tags and a warning rather than aborting the sweep.
	tags := map[string]string{}
	if fn.FunctionArn != nil {
		output, err := c.Lambda.ListTags(ctx, &lambda.ListTagsInput{Resource: fn.FunctionArn})
		if err != nil {
			logging.L().Warn("failed to list tags for lambda function",
				zap.String("function", deref(fn.FunctionName)),
				zap.Error(err))
		} else {
			tags = output.Tags
		}
	}

	return pkgtypes.LambdaFunction{
		Meta:             pkgtypes.NewMeta(deref(fn.FunctionName), c.region, deref(fn.FunctionName), tags),
		FunctionName:     deref(fn.FunctionName),
		Runtime:          string(fn.Runtime),
		State:            string(fn.State),
		SubnetIDs:        fn.VpcConfig.SubnetIds,
		SecurityGroupIDs: fn.VpcConfig.SecurityGroupIds,
	}
}
