package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/apigateway"
	"github.com/aws/aws-sdk-go-v2/service/apigatewayv2"
	"go.uber.org/zap"

	"github.com/byunjuneseok/cloud-map/internal/logging"
	pkgtypes "github.com/byunjuneseok/cloud-map/pkg/types"
)

// DiscoverAPIGateways returns REST (v1) and HTTP (v2) APIs. A failure in
// one family degrades to a warning as long as the other succeeds.
func (c *Client) DiscoverAPIGateways(ctx context.Context, vpcID string) ([]pkgtypes.APIGateway, error) {
	var apis []pkgtypes.APIGateway

	rest, restErr := c.restAPIs(ctx)
	if restErr != nil {
		logging.L().Warn("failed to discover REST APIs", zap.Error(restErr))
	}
	apis = append(apis, rest...)

	http, httpErr := c.httpAPIs(ctx)
	if httpErr != nil {
		logging.L().Warn("failed to discover HTTP APIs", zap.Error(httpErr))
	}
	apis = append(apis, http...)

	if restErr != nil && httpErr != nil {
		return nil, restErr
	}

	if vpcID != "" {
		var filtered []pkgtypes.APIGateway
		for _, api := range apis {
			if contains(api.VPCLinks, vpcID) {
				filtered = append(filtered, api)
			}
		}
		apis = filtered
	}

	return apis, nil
}

func (c *Client) restAPIs(ctx context.Context) ([]pkgtypes.APIGateway, error) {
	output, err := c.APIGateway.GetRestApis(ctx, &apigateway.GetRestApisInput{})
	if err != nil {
		return nil, err
	}

	var apis []pkgtypes.APIGateway
	for _, api := range output.Items {
		endpointType := "EDGE"
		if api.EndpointConfiguration != nil && len(api.EndpointConfiguration.Types) > 0 {
			endpointType = string(api.EndpointConfiguration.Types[0])
		}

		apis = append(apis, pkgtypes.APIGateway{
			Meta:         pkgtypes.NewMeta(deref(api.Id), c.region, deref(api.Name), api.Tags),
			APIName:      deref(api.Name),
			APIType:      "REST",
			ProtocolType: "HTTP",
			EndpointType: endpointType,
		})
	}

	return apis, nil
}

func (c *Client) httpAPIs(ctx context.Context) ([]pkgtypes.APIGateway, error) {
	output, err := c.APIGatewayV2.GetApis(ctx, &apigatewayv2.GetApisInput{})
	if err != nil {
		return nil, err
	}

	var apis []pkgtypes.APIGateway
	for _, api := range output.Items {
		apis = append(apis, pkgtypes.APIGateway{
			Meta:         pkgtypes.NewMeta(deref(api.ApiId), c.region, deref(api.Name), api.Tags),
			APIName:      deref(api.Name),
			APIType:      "HTTP",
			ProtocolType: string(api.ProtocolType),
			EndpointType: "REGIONAL",
		})
	}

	return apis, nil
}
