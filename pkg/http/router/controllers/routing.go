package controllers

import (
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/gridnav/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/gridnav/pkg/http/usecases"
	"go.uber.org/zap"
)

type routingAPI struct {
	routingService RoutingService
	log            *zap.Logger
	validate       *validator.Validate
	trans          ut.Translator
}

func New(routingService RoutingService, log *zap.Logger) *routingAPI {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	return &routingAPI{
		routingService: routingService,
		log:            log,
		validate:       validate,
		trans:          trans,
	}
}

func (api *routingAPI) Routes(group *helper.RouteGroup) {
	group.POST("/computeRoutes", api.shortestPath)
	group.POST("/computeRoutes3D", api.shortestPath3D)
	group.POST("/computeRoutesBatch", api.batchShortestPath)
	group.GET("/algorithms", api.algorithms)
	group.GET("/maps", api.maps)
}

// shortestPath
//
//	@Summary		shortest path between two cells of a 2D grid
//	@Tags			routing
//	@Accept			json
//	@Produce		json
//	@Param			body	body		routeRequest2D	true	"route request"
//	@Success		200		{object}	envelope
//	@Failure		400		{object}	errorResponse
//	@Failure		404		{object}	errorResponse
//	@Router			/computeRoutes [post]
func (api *routingAPI) shortestPath(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request routeRequest2D
	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := api.validationError(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	ans, err := api.routingService.ShortestPath2D(r.Context(), request.toQuery())
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewRouteResponse(ans)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// shortestPath3D
//
//	@Summary		shortest path between two cells of a 3D grid
//	@Tags			routing
//	@Accept			json
//	@Produce		json
//	@Param			body	body		routeRequest3D	true	"route request"
//	@Success		200		{object}	envelope
//	@Failure		400		{object}	errorResponse
//	@Router			/computeRoutes3D [post]
func (api *routingAPI) shortestPath3D(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request routeRequest3D
	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := api.validationError(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	ans, err := api.routingService.ShortestPath3D(r.Context(), request.toQuery())
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewRouteResponse(ans)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// batchShortestPath answers up to 256 independent 2D requests. a failed entry carries its own error.
//
//	@Summary		batch of 2D shortest paths
//	@Tags			routing
//	@Accept			json
//	@Produce		json
//	@Param			body	body		batchRequest	true	"routes"
//	@Success		200		{object}	envelope
//	@Failure		400		{object}	errorResponse
//	@Router			/computeRoutesBatch [post]
func (api *routingAPI) batchShortestPath(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request batchRequest
	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := api.validationError(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	queries := make([]usecases.Query2D, 0, len(request.Requests))
	for _, req := range request.Requests {
		queries = append(queries, req.toQuery())
	}

	items := api.routingService.BatchShortestPath2D(r.Context(), queries)
	resp := make([]batchItemResponse, 0, len(items))
	for _, item := range items {
		if item.Err != nil {
			status := errorStatus(item.Err)
			if status == http.StatusInternalServerError {
				api.logError(r, item.Err)
			}
			body := newErrorBody(status, publicMessage(status, item.Err))
			resp = append(resp, batchItemResponse{Error: &body})
			continue
		}
		route := NewRouteResponse(item.Answer)
		resp = append(resp, batchItemResponse{Data: &route})
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": resp}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// algorithms
//
//	@Summary		registered pathfinding algorithms
//	@Tags			routing
//	@Produce		json
//	@Success		200	{object}	envelope
//	@Router			/algorithms [get]
func (api *routingAPI) algorithms(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": api.routingService.Algorithms()}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// maps
//
//	@Summary		loaded grid maps
//	@Tags			maps
//	@Produce		json
//	@Success		200	{object}	envelope
//	@Router			/maps [get]
func (api *routingAPI) maps(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": api.routingService.Maps()}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}
