package main

import (
	"os"

	"github.com/akwaflow/website/config"
	"github.com/akwaflow/website/routes"
	"github.com/akwaflow/website/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	if cfg.SessionSecret == "" {
		utils.Sugar.Fatal("SESSION_SECRET must be set in the environment")
	}

	db := config.InitDatabase()
	if err := config.EnsureSchema(db, cfg); err != nil {
		utils.Sugar.Fatalf("schema setup failed: %v", err)
	}

	// Upload dir is also created lazily on first upload; doing it here keeps
	// /static servable from a fresh checkout.
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		utils.Sugar.Fatalf("failed to create upload directory: %v", err)
	}

	r := routes.SetupRouter(db, cfg)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
