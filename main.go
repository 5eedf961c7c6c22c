package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Immortal-romantic/hotel-booking-api/config"
	"github.com/Immortal-romantic/hotel-booking-api/database"
	bookingRepoPkg "github.com/Immortal-romantic/hotel-booking-api/database/repository/booking"
	roomRepoPkg "github.com/Immortal-romantic/hotel-booking-api/database/repository/room"
	"github.com/Immortal-romantic/hotel-booking-api/handlers"
	"github.com/Immortal-romantic/hotel-booking-api/middleware"
	"github.com/Immortal-romantic/hotel-booking-api/routes"
	"github.com/Immortal-romantic/hotel-booking-api/services/booking"
	"github.com/Immortal-romantic/hotel-booking-api/services/room"
	"github.com/Immortal-romantic/hotel-booking-api/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(database.MongoClient, utils.GetCacheClient())

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories: MongoDB when configured, in-memory otherwise.
	var roomRepo roomRepoPkg.RoomRepository
	var bookingRepo bookingRepoPkg.BookingRepository
	if database.MongoClient != nil {
		roomRepo = roomRepoPkg.NewMongoRoomRepo()
		bookingRepo = bookingRepoPkg.NewMongoBookingRepo()
	} else {
		roomRepo = roomRepoPkg.NewMemoryRoomRepo()
		bookingRepo = bookingRepoPkg.NewMemoryBookingRepo()
	}

	// Services.
	listCache := &room.ListCache{Client: utils.GetCacheClient(), TTL: 30 * time.Second}
	roomService := &room.DefaultService{
		RoomRepo:    roomRepo,
		BookingRepo: bookingRepo,
		Cache:       listCache,
		Logger:      logger,
	}
	engine := booking.NewDefaultEngine(roomRepo, bookingRepo, logger)
	engine.Cache = listCache

	// Handlers.
	roomHandler := handlers.NewRoomHandler(roomService, engine)
	bookingHandler := handlers.NewBookingHandler(engine)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CreateRoomHandler:     roomHandler.CreateRoomHandler,
		ListRoomsHandler:      roomHandler.ListRoomsHandler,
		DeleteRoomHandler:     roomHandler.DeleteRoomHandler,
		DeleteRoomByIDHandler: roomHandler.DeleteRoomByIDHandler,

		CreateBookingHandler: bookingHandler.CreateBookingHandler,
		ListBookingsHandler:  bookingHandler.ListBookingsHandler,
		DeleteBookingHandler: bookingHandler.DeleteBookingHandler,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
