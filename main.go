package main

import (
	"BoucheriePos/app/config"
	"BoucheriePos/app/database"
	"BoucheriePos/app/services"
	"BoucheriePos/app/websocket"
	"context"
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

//go:embed all:frontend/dist
var assets embed.FS

// App struct
type App struct {
	ctx             context.Context
	db              *database.LocalDB
	LoggerService   *services.LoggerService
	CatalogService  *services.CatalogService
	CartService     *services.CartService
	SalesService    *services.SalesService
	ReportsService  *services.ReportsService
	EmployeeService *services.EmployeeService
	ReceiptService  *services.ReceiptService
	WSServer        *websocket.Server
}

// NewApp creates a new App application struct
func NewApp() *App {
	return &App{}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx

	runtime.WindowMaximise(a.ctx)

	if a.WSServer != nil {
		go func() {
			defer a.LoggerService.RecoverPanic()
			if err := a.WSServer.Start(); err != nil {
				a.LoggerService.LogError("Customer display server error", err)
			}
		}()
	}
}

// beforeClose is called when the application is about to quit,
// either by clicking the window close button or calling runtime.Quit.
func (a *App) beforeClose(ctx context.Context) (prevent bool) {
	a.LoggerService.LogInfo("Application closing")

	if a.WSServer != nil {
		a.LoggerService.LogInfo("Stopping customer display server")
		a.WSServer.Stop()
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.LoggerService.LogError("Error closing database", err)
		} else {
			a.LoggerService.LogInfo("Database closed successfully")
		}
	}

	a.LoggerService.LogInfo("Application shutdown complete")
	return false
}

func main() {
	// Load environment variables from .env file in project root (for development)
	godotenv.Load(".env")

	dataDir := os.Getenv("BOUCHERIE_DATA_DIR")
	if dataDir == "" {
		if dir, err := config.GetConfigDir(); err == nil {
			dataDir = dir
		}
	}

	// Initialize logger first to catch all errors
	loggerService := services.NewLoggerService(dataDir)
	defer loggerService.Close()

	defer func() {
		if r := recover(); r != nil {
			loggerService.LogPanic(r)
			os.Exit(1)
		}
	}()

	loggerService.LogInfo("Application starting", "Boucherie POS")

	cfg, err := config.LoadConfig()
	if err != nil {
		loggerService.LogWarning("Could not load config, using defaults", err.Error())
		cfg = config.DefaultConfig()
	}
	if cfg.System.DataPath == "" {
		cfg.System.DataPath = dataDir
		if err := config.SaveConfig(cfg); err != nil {
			loggerService.LogWarning("Could not save config", err.Error())
		}
	}

	app := NewApp()
	app.LoggerService = loggerService

	// A broken local database degrades durability, it does not stop the
	// terminal: sales keep working in memory for the session.
	var store services.SaleStore
	dbPath := filepath.Join(cfg.System.DataPath, "boucherie.db")
	loggerService.LogInfo("Opening local database", dbPath)
	if err := database.InitializeLocalDB(dbPath); err != nil {
		loggerService.LogError("Failed to open local database, sales will not be persisted", err)
	} else {
		app.db = database.GetLocalDB()
		store = app.db
	}

	loggerService.LogInfo("Initializing services")
	app.CatalogService = services.NewCatalogService()
	app.CartService = services.NewCartService()
	app.SalesService = services.NewSalesService(app.CartService, store)
	app.ReportsService = services.NewReportsService(app.SalesService)
	app.EmployeeService = services.NewEmployeeService()
	app.ReceiptService = services.NewReceiptService(cfg.Business)

	// Customer display feed
	wsPort := os.Getenv("WS_PORT")
	if wsPort == "" {
		wsPort = cfg.System.DisplayPort
	}
	if wsPort != "" {
		app.WSServer = websocket.NewServer(":" + wsPort)
		app.CartService.SetDisplayNotifier(app.WSServer)
		app.SalesService.SetDisplayNotifier(app.WSServer)
	}

	bindList := []interface{}{
		app,
		app.LoggerService,
		app.CatalogService,
		app.CartService,
		app.SalesService,
		app.ReportsService,
		app.EmployeeService,
		app.ReceiptService,
	}

	err = wails.Run(&options.App{
		Title:  "Boucherie Royale POS",
		Width:  1400,
		Height: 900,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 153, G: 27, B: 27, A: 1},
		OnStartup:        app.startup,
		OnBeforeClose:    app.beforeClose,
		Bind:             bindList,
		Menu:             nil,
	})

	if err != nil {
		loggerService.LogError("Wails application error", err)
		fmt.Println("Error:", err.Error())
	}
}
