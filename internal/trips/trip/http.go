// Copyright (c) 2026 Atlastrip. All rights reserved.
// Author: vy.letran.dn@gmail.com

// HTTP delivery layer for the trip domain.
package trip

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vyletran/atlastrip/internal/platform/middleware"
	requestutil "github.com/vyletran/atlastrip/internal/platform/request"
	"github.com/vyletran/atlastrip/internal/platform/respond"
	"github.com/vyletran/atlastrip/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements trip-related HTTP endpoints.
type Handler struct {
	tripService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{tripService: service}
}

// Routes returns a [chi.Router] with the session-gated trip routes.
//
// # Endpoints
//   - GET    /          : Lists the user's trips, newest first.
//   - POST   /          : Creates a trip with its activities.
//   - GET    /{tripID}  : Returns the decorated trip detail.
//   - DELETE /{tripID}  : Deletes a trip and its activities.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Get("/{tripID}", handler.get)
	router.Delete("/{tripID}", handler.remove)

	return router
}

// SharedRoutes returns the public, read-only share routes. Mounted outside
// the session gate.
func (handler *Handler) SharedRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/{tripID}", handler.shared)
	return router
}

/*
List returns every trip of the authenticated user.

GET /api/v1/trips

Response:
  - 200: []Trip: Newest-first, activities ordered by day and time
  - 401: ErrUnauthorized: No valid session
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	trips, err := handler.tripService.List(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, trips)
}

/*
Create persists a new trip with its activities.

POST /api/v1/trips

Request:
  - Body: CreateTripInput (destination, start_date, end_date, activities[])

Response:
  - 201: Trip: Created aggregate
  - 400: ErrInvalidJSON: Malformed body or validation failure
  - 401: ErrUnauthorized: No valid session
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input CreateTripInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	trip, err := handler.tripService.Create(request.Context(), userID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, trip)
}

/*
Get returns the decorated detail view of an owned trip.

GET /api/v1/trips/{tripID}

Response:
  - 200: Detail: Trip with itinerary, image, weather
  - 401: ErrUnauthorized: No valid session
  - 404: ErrNotFound: Absent or not owned
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	tripID := requestutil.Param(request, "tripID")
	validator := &validate.Validator{}
	validator.UUID(FieldTripID, tripID)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	detail, err := handler.tripService.Get(request.Context(), userID, tripID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, detail)
}

/*
Remove deletes an owned trip and its activities.

DELETE /api/v1/trips/{tripID}

Response:
  - 204: No Content
  - 401: ErrUnauthorized: No valid session
  - 404: ErrNotFound: Absent or not owned
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	tripID := requestutil.Param(request, "tripID")
	validator := &validate.Validator{}
	validator.UUID(FieldTripID, tripID)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.tripService.Delete(request.Context(), userID, tripID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
Shared returns the public, read-only detail view of a trip.

GET /api/v1/shared/{tripID}

Description: No session required. The share link is the trip id itself;
holders can read the itinerary but nothing here mutates state.

Response:
  - 200: Detail: Same payload as the owner's detail view
  - 404: ErrNotFound: No such trip
*/
func (handler *Handler) shared(writer http.ResponseWriter, request *http.Request) {
	tripID := requestutil.Param(request, "tripID")
	validator := &validate.Validator{}
	validator.UUID(FieldTripID, tripID)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	detail, err := handler.tripService.GetShared(request.Context(), tripID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, detail)
}
