package main

import (
	"github.com/dilshat/wa-reminder/controller"
	"github.com/dilshat/wa-reminder/dao"
	_ "github.com/dilshat/wa-reminder/docs"
	"github.com/dilshat/wa-reminder/log"
	"github.com/dilshat/wa-reminder/service"
	"github.com/dilshat/wa-reminder/util"
	"github.com/dilshat/wa-reminder/whatsapp"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// @title WhatsApp reminder service HTTP API
// @description Vehicle inspection reminder service with WhatsApp notifications

// @contact.name Dilshat Aliev
// @contact.email dilshat.aliev@gmail.com

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Error.Println(err)
	}
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	//create db client
	dbClient, err := dao.GetClient(util.GetEnv("DB_PATH", "reminders.db"))
	if err != nil {
		log.Fatal(err)
	}

	//create WhatsApp relay client
	relayClient := whatsapp.NewClient(
		util.GetEnv("RELAY_URL", "http://localhost:3000/send"),
		util.GetEnvAsInt("RELAY_TIMEOUT_SEC", 10),
		util.GetEnvAsInt("TRX_PER_SEC", 10))

	reminderService := service.NewService(
		relayClient,
		dao.NewReminderDao(dbClient),
		dao.NewMessageLogDao(dbClient))

	//attach http handlers
	e := echo.New()
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.HideBanner = true
	e.Use(middleware.BodyLimit("2K"))

	bindRoutes(e, reminderService)

	//start http server
	log.Fatal(e.Start(":" + util.GetEnv("HTTP_PORT", "5000")))
}

func bindRoutes(e *echo.Echo, service service.Service) {

	e.POST("/add", controller.GetAddReminderFunc(service))

	e.GET("/list", controller.GetListRemindersFunc(service))

	e.PUT("/edit/:id", controller.GetUpdateReminderFunc(service))

	e.DELETE("/delete/:id", controller.GetDeleteReminderFunc(service))

	e.DELETE("/clear", controller.GetClearRemindersFunc(service))

	e.POST("/run_now", controller.GetRunNowFunc(service))

	e.POST("/send_one/:id", controller.GetSendOneFunc(service))

	e.GET("/api/stats", controller.GetStatsFunc(service))

	e.GET("/api/messages_timeseries", controller.GetTimeseriesFunc(service))
}
