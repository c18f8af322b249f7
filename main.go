// @title 성경 읽기 챌린지 API
// @version 1.0
// @description 그룹별 성경 읽기 챌린지의 백엔드 서버.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"bible_challenge_backend/internal/app"
	"bible_challenge_backend/internal/config"
	"bible_challenge_backend/pkg/configwatcher"
	"bible_challenge_backend/pkg/logger"
	"flag"
	"log"
)

func main() {
	// 커맨드라인 플래그
	migrateOnly := flag.Bool("migrate-only", false, "데이터베이스 마이그레이션만 수행하고 종료")
	migrate := flag.Bool("migrate", false, "기동 시 마이그레이션 강제 수행")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Database migration finished, exiting")
		return
	}

	// 설정 파일이 바뀌면 재기동 없이 반영 가능한 항목만 교체한다
	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(newCfg interface{}) {
		updated, ok := newCfg.(*config.Config)
		if !ok {
			return
		}
		cfg.ApplyReload(updated)
		log.Println("Config reloaded")
	})

	application.Run()
}
