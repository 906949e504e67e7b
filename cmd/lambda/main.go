package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/okrun-lambda/internal/config"
	"github.com/saulo-duarte/okrun-lambda/internal/container"
)

func main() {
	ctx := context.Background()

	c, err := container.New(ctx, config.Load())
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to build container")
	}

	adapter := httpadapter.New(c.Router())
	lambda.Start(adapter.ProxyWithContext)
}
