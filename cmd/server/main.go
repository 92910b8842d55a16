package main

import (
	_ "github.com/caseprepared/backend/docs"
	"github.com/caseprepared/backend/internal/bootstrap"
)

// @title CasePrepared API
// @version 1.0.0
// @description Backend for case interview practice: accounts, billing, interview sessions and realtime credentials.

// @host api.caseprepared.com
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

func main() {
	bootstrap.Run()
}
