package main

import (
	"strings"

	_ "github.com/sigebi/bienes_mid/routers"

	"github.com/beego/beego/v2/core/logs"
	beego "github.com/beego/beego/v2/server/web"
	cors "github.com/beego/beego/v2/server/web/filter/cors"
	"github.com/joho/godotenv"

	internalhelpers "github.com/sigebi/bienes_mid/internal/helpers"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logs.Info("sin archivo .env, usando variables de entorno")
	}

	origenes := strings.Split(internalhelpers.Env("CORS_ALLOWED_ORIGINS", "http://localhost:4200,http://localhost:5173"), ",")

	beego.InsertFilter("*", beego.BeforeRouter, cors.Allow(&cors.Options{
		AllowOrigins:     origenes, //orígenes permitidos
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Requested-With", "X-Request-Id", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))
	if beego.BConfig.RunMode == "dev" {
		beego.BConfig.WebConfig.DirectoryIndex = true
		beego.BConfig.WebConfig.StaticDir["/swagger"] = "swagger"
	}
	beego.Run()
}
