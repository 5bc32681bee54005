// @title Estudo Backend API
// @version 1.0
// @description 备考学习平台的后端服务：答题记录、学习进度与表现统计。

// @contact.name API支持
// @contact.email support@estudo.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"estudo_backend/internal/app"
	"estudo_backend/internal/config"
	"estudo_backend/internal/repository"
	"estudo_backend/internal/service"
	"estudo_backend/pkg/logger"
	"flag"
	"log"
	"os"

	"go.uber.org/zap"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件目录")
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	migrate := flag.Bool("migrate", false, "启动时强制执行数据库迁移（即使是 release 模式）")
	seed := flag.String("seed", "", "启动前从 YAML 文件导入题目")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 设置迁移标志
	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer logger.Log.Sync()
	application.ConfigDir = *configDir

	// 迁移完成后直接退出
	if *migrateOnly {
		logger.Log.Info("数据库迁移完成，退出程序")
		application.Close(context.Background())
		return
	}

	if *seed != "" {
		if err := importQuestions(application, *seed); err != nil {
			logger.Log.Fatal("Failed to import questions", zap.String("file", *seed), zap.Error(err))
		}
	}

	application.Run()
}

func importQuestions(application *app.App, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	svc := service.NewQuestionService(repository.NewQuestionRepository(application.DB))
	n, err := svc.ImportYAML(context.Background(), f)
	if err != nil {
		return err
	}
	logger.Log.Info("Questions imported", zap.Int("count", n))
	return nil
}
