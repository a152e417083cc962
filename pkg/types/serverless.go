package types

// LambdaFunction represents a Lambda function attached to a VPC
type LambdaFunction struct {
	Meta
	FunctionName     string
	Runtime          string
	State            string
	SubnetIDs        []string
	SecurityGroupIDs []string
}

func (LambdaFunction) ResourceKind() Kind { return KindLambdaFunction }
