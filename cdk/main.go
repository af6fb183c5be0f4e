package main

import (
	"os"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsapigateway"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

type ClubHubStackProps struct {
	awscdk.StackProps
}

func envOr(key, fallback string) *string {
	if v := os.Getenv(key); v != "" {
		return jsii.String(v)
	}
	return jsii.String(fallback)
}

func NewClubHubStack(scope constructs.Construct, id string, props *ClubHubStackProps) awscdk.Stack {
	var stackProps awscdk.StackProps
	if props != nil {
		stackProps = props.StackProps
	}

	stack := awscdk.NewStack(scope, &id, &stackProps)

	lambdaFn := awslambda.NewFunction(stack, jsii.String("ClubHubApi"), &awslambda.FunctionProps{
		Runtime:    awslambda.Runtime_PROVIDED_AL2023(),
		Handler:    jsii.String("bootstrap"),
		Code:       awslambda.Code_FromAsset(jsii.String("../"), nil),
		MemorySize: jsii.Number(256),
		Timeout:    awscdk.Duration_Seconds(jsii.Number(15)),
		Environment: &map[string]*string{
			"APP":                  jsii.String("prod"),
			"STORE_DRIVER":         envOr("STORE_DRIVER", "static"),
			"POSTGRES_DSN":         envOr("POSTGRES_DSN", ""),
			"SEED_SQL_STORE":       envOr("SEED_SQL_STORE", "false"),
			"DISPLAY_LOCALE":       envOr("DISPLAY_LOCALE", "en"),
			"ASSET_MODE":           envOr("ASSET_MODE", "passthrough"),
			"CORS_ALLOWED_ORIGINS": envOr("CORS_ALLOWED_ORIGINS", "*"),
			"LOG_LEVEL":            envOr("LOG_LEVEL", "info"),
		},
	})

	api := awsapigateway.NewLambdaRestApi(stack, jsii.String("ClubHubApiGateway"), &awsapigateway.LambdaRestApiProps{
		Handler: lambdaFn,
	})

	awscdk.NewCfnOutput(stack, jsii.String("ApiUrl"), &awscdk.CfnOutputProps{Value: api.Url()})

	return stack
}

func main() {
	app := awscdk.NewApp(nil)
	NewClubHubStack(app, "ClubHubStack", &ClubHubStackProps{})
	app.Synth(nil)
}
