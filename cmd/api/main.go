// Package main StarQuest API
//
// StarQuest API backs the game's player data: credential-based auth, the
// global star leaderboard, and per-player level progress with the
// star-scoring rule.
//
//	Schemes: http, https
//	Host: localhost:8080
//	BasePath: /api/v1
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
package main

import (
	"context"

	_ "github.com/playforge/starquest/docs"
	"github.com/playforge/starquest/internal/app"
)

// @title StarQuest API Service
// @version 1.0
// @description Player auth, leaderboard and level progress for StarQuest.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.Setup()
}
