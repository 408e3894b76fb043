package main

import (
	"context"
	"log"

	"tacticalalloc/api"
	"tacticalalloc/cmd"
	"tacticalalloc/internal/logger"
	"tacticalalloc/internal/util"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
)

type lambdaHandler struct {
	apiHandler *api.ApiHandler
	ginLambda  *ginadapter.GinLambda
}

func (m lambdaHandler) Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	m.apiHandler.Logger.Infow("lambda request", "method", req.HTTPMethod, "path", req.Path)
	return m.ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	cfg, err := util.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	lg := logger.New()

	deps, err := cmd.InitializeDependencies(logger.NewContext(context.Background(), lg), cfg, lg)
	if err != nil {
		lg.Fatal(err)
	}

	handler := lambdaHandler{
		apiHandler: deps.ApiHandler,
		ginLambda:  ginadapter.New(deps.ApiHandler.InitializeRouterEngine()),
	}
	lambda.Start(handler.Handler)
}
