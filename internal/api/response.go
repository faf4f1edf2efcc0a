package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/leopardracer/network-app/internal/types"
)

const (
	contentTypeHeader  = "Content-Type"
	contentTypeOptions = "X-Content-Type-Options"
	jsonContentType    = "application/json; charset=utf-8"
)

// handlerFunc returns the writer of the response, so handlers end with a single
// return of either a payload or an error.
type handlerFunc func(w http.ResponseWriter, r *http.Request) http.HandlerFunc

func (h handlerFunc) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if respond := h(w, r); respond != nil {
		respond(w, r)
	}
}

func jsonResponse(status int, data any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(contentTypeHeader, jsonContentType)
		w.Header().Set(contentTypeOptions, "nosniff")
		w.WriteHeader(status)
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Ctx(r.Context()).Error().Err(err).Msg("failed to write response")
		}
	}
}

func ok(data any) http.HandlerFunc {
	return jsonResponse(http.StatusOK, data)
}

func noContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

// Messages of server side failures never leak their cause.
const (
	internalErrorMessage = "Internal service error"
	rpcErrorMessage      = "The network service is unavailable, please try again later"
)

func errorResponse(err *types.Error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.Ctx(r.Context())
		resp := ErrorResponse{ErrorCode: err.ErrorCode.String(), Message: err.Error()}

		switch {
		case err.ErrorCode == types.RpcError:
			logger.Warn().Err(err).Msg("remote service error")
			resp.Message = rpcErrorMessage
		case err.StatusCode >= http.StatusInternalServerError:
			logger.Error().Err(err).Msg("internal service error")
			resp.ErrorCode = types.InternalServiceError.String()
			resp.Message = internalErrorMessage
		default:
			logger.Debug().Err(err).Msg("request rejected")
		}

		jsonResponse(err.StatusCode, resp)(w, r)
	}
}

// toError turns any error into a *types.Error, unknown errors being internal.
func toError(err error) *types.Error {
	var typed *types.Error
	if errors.As(err, &typed) {
		return typed
	}
	return types.NewInternalServiceError(err)
}
