package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

type TripPlannerHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	address   string
}

func NewTripPlannerHttpServer(router *Router, muxRouter *mux.Router, address string) *TripPlannerHttpServer {
	return &TripPlannerHttpServer{
		router:    router,
		muxRouter: muxRouter,
		address:   address,
	}
}

// Start registers the routes, serves until an interrupt or termination
// signal arrives and then shuts down gracefully.
func (s *TripPlannerHttpServer) Start() {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.muxRouter,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[TripPlannerHttpServer] Starting server on %s", s.address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	<-stop
	log.Println("[TripPlannerHttpServer] Shutting down the server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("[TripPlannerHttpServer] Server exiting")
}
