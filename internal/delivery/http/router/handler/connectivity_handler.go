package handler

import (
	"net/http"

	"larder/internal/delivery/http/response"
	"larder/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ConnectivityHandler exposes the reachability signal.
type ConnectivityHandler struct {
	connectivityUC usecase.ConnectivityUsecase
}

// NewConnectivityHandler is the constructor for ConnectivityHandler
func NewConnectivityHandler(connectivityUC usecase.ConnectivityUsecase) *ConnectivityHandler {
	return &ConnectivityHandler{connectivityUC: connectivityUC}
}

// GetStatus reports whether the device currently has network connectivity.
func (h *ConnectivityHandler) GetStatus(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]bool{
		"online": h.connectivityUC.Online(),
	}, "")
}
