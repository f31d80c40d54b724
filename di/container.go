package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"trip-server/api"
	"trip-server/api/googlemaps"
	"trip-server/catalog"
	"trip-server/config"
	redisdao "trip-server/dao/redis"
	"trip-server/db"
	"trip-server/geo"
	"trip-server/recommend"
	"trip-server/route"
	"trip-server/server"
	"trip-server/server/handlers"
	services "trip-server/service"
)

// Container holds all application dependencies.
type Container struct {
	Config                  *config.Config
	RedisClient             db.RedisClient
	RedisTripDao            *redisdao.RedisTripDao
	DirectionsAPI           googlemaps.DirectionsAPI
	PlacesAPI               googlemaps.PlacesAPI
	Engine                  *recommend.Engine
	Resolver                *geo.Resolver
	RouteComputer           *route.Computer
	TripService             *services.TripService
	CatalogRefresherService *services.CatalogRefresherService
	TripHandler             *handlers.TripHandler
	MuxRouter               *mux.Router
	Router                  *server.Router
	TripPlannerHttpServer   *server.TripPlannerHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg *config.Config) *Container {
	log.Printf("initializing container - env: %s", cfg.Env)
	ctx := context.Background()

	// Redis: real client in prod, in-memory mock everywhere else.
	var redisClient db.RedisClient
	if cfg.Env == "prod" {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		client := db.NewGeoRedisClient(redisInternalClient)
		if err := client.Ping(ctx); err != nil {
			panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
		redisClient = client
	} else {
		log.Printf("Using mock redis client")
		redisClient = db.NewMockRedisClient()
	}

	redisTripDao := redisdao.NewRedisTripDao(redisClient)

	// Google Maps clients: mocks unless running in prod with a key.
	var directionsAPI googlemaps.DirectionsAPI
	var placesAPI googlemaps.PlacesAPI
	if cfg.Env == "prod" && cfg.GoogleMapsAPIKey != "" {
		log.Printf("Using prod google maps api")
		httpClient := api.NewHTTPClient(cfg.GoogleMapsBaseURL)
		directionsClient := googlemaps.NewDirectionsApiClient(httpClient)
		directionsClient.SetCredentials(cfg.GoogleMapsAPIKey)
		directionsAPI = directionsClient

		placesClient := googlemaps.NewPlacesApiClient(api.NewHTTPClient(cfg.GoogleMapsBaseURL))
		placesClient.SetCredentials(cfg.GoogleMapsAPIKey)
		placesAPI = placesClient
	} else {
		log.Printf("Using mock google maps api")
		directionsAPI = googlemaps.NewDirectionsApiClientMock()
		placesAPI = googlemaps.NewPlacesApiClientMock(
			config.GetResourcePath(config.FACILITY_LOCATIONS_RESOURCE))
	}

	engine := recommend.NewEngine(nil, cfg.NPSReorder)
	resolver := geo.NewResolver(placesAPI)
	routeComputer := route.NewComputer(directionsAPI, cfg.RouteFallbackOnError)

	tripService := services.NewTripService(engine, resolver, routeComputer, redisTripDao)
	catalogRefresherService := services.NewCatalogRefresherService(
		catalog.NewParser(), engine, redisTripDao, cfg.CatalogPath)

	tripHandler := handlers.NewTripHandler(tripService, cfg.RecommendationLimit)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(tripHandler, muxRouter)
	tripPlannerHttpServer := server.NewTripPlannerHttpServer(router, muxRouter, cfg.ServerAddress)

	return &Container{
		Config:                  cfg,
		RedisClient:             redisClient,
		RedisTripDao:            redisTripDao,
		DirectionsAPI:           directionsAPI,
		PlacesAPI:               placesAPI,
		Engine:                  engine,
		Resolver:                resolver,
		RouteComputer:           routeComputer,
		TripService:             tripService,
		CatalogRefresherService: catalogRefresherService,
		TripHandler:             tripHandler,
		MuxRouter:               muxRouter,
		Router:                  router,
		TripPlannerHttpServer:   tripPlannerHttpServer,
	}
}
