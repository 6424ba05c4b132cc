package main

import (
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	customerapp "github.com/bobursolih/market-backend/application/customer"
	deliveryapp "github.com/bobursolih/market-backend/application/delivery"
	inventoryapp "github.com/bobursolih/market-backend/application/inventory"
	orderapp "github.com/bobursolih/market-backend/application/order"
	productapp "github.com/bobursolih/market-backend/application/product"
	supplierapp "github.com/bobursolih/market-backend/application/supplier"
	userapp "github.com/bobursolih/market-backend/application/user"
	"github.com/bobursolih/market-backend/cmd/config"
	redisclient "github.com/bobursolih/market-backend/cmd/redis"
	_ "github.com/bobursolih/market-backend/docs"
	auditRepo "github.com/bobursolih/market-backend/repository/audit"
	batchRepo "github.com/bobursolih/market-backend/repository/batch"
	customerRepo "github.com/bobursolih/market-backend/repository/customer"
	deliveryRepo "github.com/bobursolih/market-backend/repository/delivery"
	orderRepo "github.com/bobursolih/market-backend/repository/order"
	preparerRepo "github.com/bobursolih/market-backend/repository/preparer"
	productRepo "github.com/bobursolih/market-backend/repository/product"
	redisRepo "github.com/bobursolih/market-backend/repository/redis"
	supplierRepo "github.com/bobursolih/market-backend/repository/supplier"
	txRepo "github.com/bobursolih/market-backend/repository/tx"
	userRepo "github.com/bobursolih/market-backend/repository/user"
	"github.com/bobursolih/market-backend/thirdparty/rabbitmq"
	"github.com/bobursolih/market-backend/transport"
	"github.com/bobursolih/market-backend/utils/logger"
)

// @title MARKET BACKEND API
// @version 1.0
// @description Inventory, ordering and delivery API for the market backend
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, "api"); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// RabbitMQ is optional, the API degrades to log-only low stock alerts
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("rabbitmq unavailable, low stock alerts disabled", zap.Error(err))
		publisher = nil
	} else {
		defer func() {
			_ = publisher.Close()
		}()
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	BatchRepo := batchRepo.NewBatchRepository(db)
	CustomerRepo := customerRepo.NewCustomerRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	PreparerRepo := preparerRepo.NewPreparerRepository(db)
	SupplierRepo := supplierRepo.NewSupplierRepository(db)
	DeliveryRepo := deliveryRepo.NewDeliveryRepository(db)
	AuditRepo := auditRepo.NewAuditRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	InventoryApp := inventoryapp.NewInventoryApp(cfg, TxRepo, BatchRepo, ProductRepo)
	UserApp := userapp.NewUserApp(cfg, UserRepo, SupplierRepo, RedisRepo)
	ProductApp := productapp.NewProductApp(ProductRepo)
	CustomerApp := customerapp.NewCustomerApp(CustomerRepo)
	OrderApp := orderapp.NewOrderApp(TxRepo, OrderRepo, PreparerRepo, ProductRepo, CustomerRepo, DeliveryRepo, AuditRepo, InventoryApp, publisher)
	SupplierApp := supplierapp.NewSupplierApp(TxRepo, SupplierRepo, ProductRepo, AuditRepo, InventoryApp)
	DeliveryApp := deliveryapp.NewDeliveryApp(TxRepo, DeliveryRepo, OrderRepo, CustomerRepo, AuditRepo)

	httpTransport := transport.NewTransport(cfg, &transport.RestHandler{
		UserApp:      UserApp,
		ProductApp:   ProductApp,
		InventoryApp: InventoryApp,
		OrderApp:     OrderApp,
		SupplierApp:  SupplierApp,
		DeliveryApp:  DeliveryApp,
		CustomerApp:  CustomerApp,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
