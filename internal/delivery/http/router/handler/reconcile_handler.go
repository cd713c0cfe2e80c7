package handler

import (
	"log/slog"
	"net/http"

	"larder/internal/delivery/http/middleware"
	"larder/internal/delivery/http/response"
	domainerrors "larder/internal/domain/errors"
	"larder/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ReconcileHandlerParams holds dependencies for ReconcileHandler, injected by Fx.
type ReconcileHandlerParams struct {
	fx.In

	ReconcileUC usecase.ReconcileUsecase
	PantryUC    usecase.PantryUsecase
	Lists       usecase.ListStoreFactory
	Logger      *slog.Logger
}

// ReconcileHandler holds dependencies for reconciliation handlers
type ReconcileHandler struct {
	reconcileUC usecase.ReconcileUsecase
	pantryUC    usecase.PantryUsecase
	lists       usecase.ListStoreFactory
	logger      *slog.Logger
}

// NewReconcileHandler is the constructor for ReconcileHandler
func NewReconcileHandler(params ReconcileHandlerParams) *ReconcileHandler {
	return &ReconcileHandler{
		reconcileUC: params.ReconcileUC,
		pantryUC:    params.PantryUC,
		lists:       params.Lists,
		logger:      params.Logger,
	}
}

// SendSelectedRequest represents the request body for sending selected items
type SendSelectedRequest struct {
	SelectedIDs []string `json:"selected_ids" validate:"required,min=1"`
}

// sendResult reports how many entries reached the shopping queue.
type sendResult struct {
	Inserted int `json:"inserted"`
}

// GetMissing diffs one list against the live pantry snapshot.
func (h *ReconcileHandler) GetMissing(c echo.Context) error {
	identity := middleware.Identity(c)

	store := h.lists.For(identity)
	store.Load(c.Request().Context())

	list, err := store.Get(c.Param("id"))
	if err != nil {
		return err
	}

	pantry, err := h.pantryUC.Snapshot(c.Request().Context(), identity)
	if err != nil {
		return err
	}

	missing := h.reconcileUC.ComputeMissing(list, pantry)

	return response.Success(c, http.StatusOK, map[string]any{
		"list_id": list.ID,
		"missing": missing,
	}, "")
}

// SendMissing pushes the list's missing items into the shopping queue.
func (h *ReconcileHandler) SendMissing(c echo.Context) error {
	identity := middleware.Identity(c)

	store := h.lists.For(identity)
	store.Load(c.Request().Context())

	list, err := store.Get(c.Param("id"))
	if err != nil {
		return err
	}

	pantry, err := h.pantryUC.Snapshot(c.Request().Context(), identity)
	if err != nil {
		return err
	}

	inserted, err := h.reconcileUC.SendMissing(c.Request().Context(), identity, list, pantry)
	if err != nil {
		return queueError(err)
	}

	return response.Success(c, http.StatusOK, sendResult{Inserted: inserted}, "Missing items queued")
}

// SendSelected pushes explicitly selected pantry items into the shopping
// queue.
func (h *ReconcileHandler) SendSelected(c echo.Context) error {
	var req SendSelectedRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid selection input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	identity := middleware.Identity(c)

	pantry, err := h.pantryUC.Snapshot(c.Request().Context(), identity)
	if err != nil {
		return err
	}

	inserted, err := h.reconcileUC.SendSelected(c.Request().Context(), identity, pantry, req.SelectedIDs)
	if err != nil {
		return queueError(err)
	}

	return response.Success(c, http.StatusOK, sendResult{Inserted: inserted}, "Selected items queued")
}

// queueError keeps identity precondition failures intact and maps every
// other send failure to the shopping queue business error.
func queueError(err error) error {
	if errors.Is(err, usecase.ErrIdentityRequired) {
		return err
	}

	return domainerrors.ErrShoppingQueueWriteFailed.WithDetails(err.Error())
}
