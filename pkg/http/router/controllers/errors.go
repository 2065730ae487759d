package controllers

import (
	"net/http"

	"github.com/lintang-b-s/gridnav/pkg/util"
	"go.uber.org/zap"
)

func errorStatus(err error) int {
	switch util.ErrorCode(err) {
	case util.ErrBadParamInput:
		return http.StatusBadRequest
	case util.ErrNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func newErrorBody(status int, message string) errorBody {
	return errorBody{Code: http.StatusText(status), Message: message}
}

// publicMessage hides the detail of internal errors.
func publicMessage(status int, err error) string {
	if status == http.StatusInternalServerError {
		return util.MessageInternalServerError
	}
	return err.Error()
}

func (api *routingAPI) logError(r *http.Request, err error) {
	api.log.Error("request failed", zap.Error(err), zap.String("method", r.Method),
		zap.String("url", r.URL.String()))
}

func (api *routingAPI) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	if err := writeJSON(w, status, errorResponse{Error: newErrorBody(status, message)}, nil); err != nil {
		api.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (api *routingAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.logError(r, err)
	api.errorResponse(w, r, http.StatusInternalServerError, util.MessageInternalServerError)
}

func (api *routingAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (api *routingAPI) NotFoundResponse(w http.ResponseWriter, r *http.Request) {
	api.errorResponse(w, r, http.StatusNotFound, "the requested resource could not be found")
}

// getStatusCode writes the response matching the code carried by err.
func (api *routingAPI) getStatusCode(w http.ResponseWriter, r *http.Request, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		api.ServerErrorResponse(w, r, err)
		return
	}
	api.errorResponse(w, r, status, err.Error())
}

// WriteError writes the JSON error body used by every endpoint.
func WriteError(w http.ResponseWriter, status int, message string) {
	if err := writeJSON(w, status, errorResponse{Error: newErrorBody(status, message)}, nil); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}
