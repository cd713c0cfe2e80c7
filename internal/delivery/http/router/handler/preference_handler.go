package handler

import (
	"log/slog"
	"net/http"

	"larder/internal/delivery/http/middleware"
	"larder/internal/delivery/http/response"
	"larder/internal/domain/entity"
	"larder/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PreferenceHandlerParams holds dependencies for PreferenceHandler, injected by Fx.
type PreferenceHandlerParams struct {
	fx.In

	Preferences usecase.PreferenceStoreFactory
	Logger      *slog.Logger
}

// PreferenceHandler holds dependencies for preference handlers
type PreferenceHandler struct {
	preferences usecase.PreferenceStoreFactory
	logger      *slog.Logger
}

// NewPreferenceHandler is the constructor for PreferenceHandler
func NewPreferenceHandler(params PreferenceHandlerParams) *PreferenceHandler {
	return &PreferenceHandler{
		preferences: params.Preferences,
		logger:      params.Logger,
	}
}

// preferencePayload wraps a preference record with its provenance.
type preferencePayload struct {
	Preferences any                      `json:"preferences"`
	Source      usecase.PreferenceSource `json:"source"`
	SyncStatus  usecase.SyncStatus       `json:"sync_status"`
}

// GetInterfacePreferences returns the caller's interface preference record.
func (h *PreferenceHandler) GetInterfacePreferences(c echo.Context) error {
	store := h.preferences.For(middleware.Identity(c))

	prefs, source, err := store.FetchInterface(c.Request().Context())
	if err != nil {
		h.logger.Warn("interface preference fetch degraded", slog.Any("error", err))
	}

	return response.Success(c, http.StatusOK, preferencePayload{
		Preferences: prefs,
		Source:      source,
		SyncStatus:  store.InterfaceSyncStatus(),
	}, "")
}

// UpdateInterfacePreferences applies a partial change set to the interface
// record. The merged value is returned even when the remote write failed;
// the sync status tells the caller which case they hit.
func (h *PreferenceHandler) UpdateInterfacePreferences(c echo.Context) error {
	var patch entity.InterfacePreferencePatch
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preference input")
	}

	store := h.preferences.For(middleware.Identity(c))

	merged, err := store.UpdateInterface(c.Request().Context(), &patch)
	if err != nil {
		h.logger.Warn("interface preference update degraded", slog.Any("error", err))
	}

	return response.Success(c, http.StatusOK, preferencePayload{
		Preferences: merged,
		Source:      usecase.PreferenceSourceRemote,
		SyncStatus:  store.InterfaceSyncStatus(),
	}, "Preferences updated")
}

// GetUserPreferences returns the caller's user preference record.
func (h *PreferenceHandler) GetUserPreferences(c echo.Context) error {
	store := h.preferences.For(middleware.Identity(c))

	prefs, source, err := store.FetchUser(c.Request().Context())
	if err != nil {
		h.logger.Warn("user preference fetch degraded", slog.Any("error", err))
	}

	return response.Success(c, http.StatusOK, preferencePayload{
		Preferences: prefs,
		Source:      source,
		SyncStatus:  store.UserSyncStatus(),
	}, "")
}

// UpdateUserPreferences applies a partial change set to the user record.
func (h *PreferenceHandler) UpdateUserPreferences(c echo.Context) error {
	var patch entity.UserPreferencePatch
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preference input")
	}

	store := h.preferences.For(middleware.Identity(c))

	merged, err := store.UpdateUser(c.Request().Context(), &patch)
	if err != nil {
		h.logger.Warn("user preference update degraded", slog.Any("error", err))
	}

	return response.Success(c, http.StatusOK, preferencePayload{
		Preferences: merged,
		Source:      usecase.PreferenceSourceRemote,
		SyncStatus:  store.UserSyncStatus(),
	}, "Preferences updated")
}

// GetSyncStatus reports both records' divergence windows.
func (h *PreferenceHandler) GetSyncStatus(c echo.Context) error {
	store := h.preferences.For(middleware.Identity(c))

	return response.Success(c, http.StatusOK, map[string]usecase.SyncStatus{
		"interface": store.InterfaceSyncStatus(),
		"user":      store.UserSyncStatus(),
	}, "")
}
