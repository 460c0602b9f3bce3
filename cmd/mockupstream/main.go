package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"mileage/pkg/logger"
)

func main() {
	port := "8081"
	if len(os.Args) > 1 {
		port = os.Args[1]
	}

	zlogger := logger.NewZeroLog("development")

	handler, err := newPartnerHandler(fixture)
	if err != nil {
		log.Fatal(err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	handler.RegisterRoutes(r)

	addr := fmt.Sprintf(":%s", port)
	zlogger.Info("mock seats.aero partner api running",
		logger.Field{Key: "addr", Value: addr},
		logger.Field{Key: "records", Value: len(handler.rows)},
	)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
