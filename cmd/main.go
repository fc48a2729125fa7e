package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Luvas-jpeg/PIM-II-Sistema-Academico/config"
	"github.com/Luvas-jpeg/PIM-II-Sistema-Academico/database"
	"github.com/Luvas-jpeg/PIM-II-Sistema-Academico/handlers"
	"github.com/Luvas-jpeg/PIM-II-Sistema-Academico/routes"
)

func main() {
	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	cfg := config.Load()

	// se o banco não estiver de pé, melhor falhar já na subida
	db := database.Connect(cfg)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e, db, cfg)

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
