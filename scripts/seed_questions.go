// 手动导入题库脚本
//
// 主程序也可通过 -seed 参数在启动时导入。
// 此脚本用于首次部署或批量补充题目。
//
// 用法: go run scripts/seed_questions.go -file configs/questions.example.yaml

package main

import (
	"context"
	"estudo_backend/internal/config"
	"estudo_backend/internal/repository"
	"estudo_backend/internal/service"
	"estudo_backend/pkg/database"
	"estudo_backend/pkg/logger"
	"flag"
	"log"
	"os"
)

func main() {
	configDir := flag.String("config", "configs", "配置文件目录")
	file := flag.String("file", "configs/questions.example.yaml", "题目 YAML 文件")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("无法打开题目文件: %v", err)
	}
	defer f.Close()

	questions := service.NewQuestionService(repository.NewQuestionRepository(db))
	n, err := questions.ImportYAML(context.Background(), f)
	if err != nil {
		log.Fatalf("导入失败: %v", err)
	}
	log.Printf("完成！共导入 %d 道题目", n)
}
