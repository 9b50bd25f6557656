package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" //postgres
	"github.com/labstack/gommon/log"

	"github.com/radhian/remittance-docgen/config"
	"github.com/radhian/remittance-docgen/handler"
	"github.com/radhian/remittance-docgen/infra/cache"
	"github.com/radhian/remittance-docgen/infra/db/dao"
	"github.com/radhian/remittance-docgen/infra/db/model"
	"github.com/radhian/remittance-docgen/infra/docx"
	"github.com/radhian/remittance-docgen/infra/notion"
	"github.com/radhian/remittance-docgen/middlewares"
	remittanceUsecase "github.com/radhian/remittance-docgen/usecase/remittance"
)

type App struct {
	Config config.Config
	DB     *gorm.DB
	Router *mux.Router
	Store  *notion.Client
}

func (a *App) Initialize(cfg config.Config) {
	a.Config = cfg
	log.SetLevel(logLevel(cfg.LogLevel))
	log.SetHeader("${time_rfc3339} ${level}")

	if cfg.DBEnabled() {
		var err error
		a.DB, err = gorm.Open("postgres", cfg.DBURI())
		if err != nil {
			log.Fatalf("[App] cannot connect to database %s: %v", cfg.DB.Name, err)
		}
		log.Infof("[App] connected to database %s", cfg.DB.Name)

		a.DB.AutoMigrate(
			&model.DocumentGenerationLog{},
			&model.DocumentGenerationLogVariable{},
		) //database migration
	} else {
		log.Warn("[App] DB_HOST not set, generation log disabled")
	}

	a.Store = notion.NewClient(cfg, a.schemaCache())

	a.Router = mux.NewRouter().StrictSlash(true)
	a.initializeRoutes()
}

func (a *App) schemaCache() cache.SchemaCache {
	if a.Config.RedisAddr == "" {
		return cache.NewMemoryCache()
	}

	rc, err := cache.NewRedisCacheFromAddr(context.Background(), a.Config.RedisAddr)
	if err != nil {
		log.Warnf("[App] redis unavailable at %s, using in-memory schema cache: %v", a.Config.RedisAddr, err)
		return cache.NewMemoryCache()
	}
	return rc
}

func (a *App) initializeRoutes() {
	a.Router.Use(middlewares.RequestLoggingMiddleware)
	a.Router.Use(middlewares.SetContentTypeMiddleware)

	var d dao.DaoMethod
	if a.DB != nil {
		d = dao.NewDaoMethod(a.DB)
	}

	uc := remittanceUsecase.NewRemittanceUsecase(a.Config, a.Store, d, openDocxTemplate)
	RegisterRemittanceRoutes(a.Router, handler.NewRemittanceHandler(uc))
}

func openDocxTemplate(path string) (remittanceUsecase.Template, error) {
	tpl, err := docx.Open(path)
	if err != nil {
		return nil, err
	}
	return tpl, nil
}

func (a *App) RunServer() {
	addr := ":" + a.Config.Port
	log.Infof("[App] server starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, a.Router))
}

func logLevel(s string) log.Lvl {
	switch strings.ToLower(s) {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
