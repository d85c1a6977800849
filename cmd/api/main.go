package main

import (
	"mall/internal/config"
	"mall/internal/handler"
	"mall/internal/infra/db"
	infraRepo "mall/internal/infra/repository"
	"mall/internal/server"
	"mall/internal/session"
	"mall/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config load failed", zap.Error(err))
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal("db connect failed", zap.Error(err))
	}
	if err := db.Migrate(gormDB); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}
	if err := db.Seed(gormDB); err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//セッションカート
	store := session.NewCartStore(cfg.SessionSecret)

	//Usecase生成
	catalogUC := usecase.NewCatalogUsecase(productRepo)
	cartUC := usecase.NewCartUsecase(productRepo, logger)
	checkoutUC := usecase.NewCheckoutUsecase(txManager, logger)
	orderUC := usecase.NewOrderUsecase(orderRepo, orderItemRepo)

	//Handler生成
	catalogH := handler.NewCatalogHandler(catalogUC)
	cartH := handler.NewCartHandler(cartUC, store)
	checkoutH := handler.NewCheckoutHandler(checkoutUC, cartUC, store)
	orderH := handler.NewOrderHandler(orderUC)

	//Server起動
	addr := cfg.Port
	if addr == "" || addr[0] != ':' {
		addr = ":" + addr
	}

	logger.Info("starting server", zap.String("addr", addr))
	if err := server.Start(addr, logger, catalogH, cartH, checkoutH, orderH); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
