package handler

import (
	"log/slog"
	"net/http"

	"larder/internal/delivery/http/middleware"
	"larder/internal/delivery/http/response"
	"larder/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ListHandlerParams holds dependencies for ListHandler, injected by Fx.
type ListHandlerParams struct {
	fx.In

	Lists  usecase.ListStoreFactory
	Logger *slog.Logger
}

// ListHandler holds dependencies for custom-list handlers
type ListHandler struct {
	lists  usecase.ListStoreFactory
	logger *slog.Logger
}

// NewListHandler is the constructor for ListHandler
func NewListHandler(params ListHandlerParams) *ListHandler {
	return &ListHandler{
		lists:  params.Lists,
		logger: params.Logger,
	}
}

// CreateListRequest represents the request body for creating a list
type CreateListRequest struct {
	Name string `json:"name" validate:"required"`
}

// RenameListRequest represents the request body for renaming a list
type RenameListRequest struct {
	Name string `json:"name" validate:"required"`
}

// AddItemRequest represents the request body for adding an item reference
type AddItemRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}

// GetLists returns the caller's full list collection.
func (h *ListHandler) GetLists(c echo.Context) error {
	store := h.lists.For(middleware.Identity(c))
	lists := store.Load(c.Request().Context())

	return response.Success(c, http.StatusOK, lists, "")
}

// GetList returns one list by id.
func (h *ListHandler) GetList(c echo.Context) error {
	store := h.lists.For(middleware.Identity(c))
	store.Load(c.Request().Context())

	list, err := store.Get(c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, list, "")
}

// CreateList creates a new named list.
func (h *ListHandler) CreateList(c echo.Context) error {
	var req CreateListRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid list input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	store := h.lists.For(middleware.Identity(c))
	store.Load(c.Request().Context())

	list, err := store.Create(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, list, "List created")
}

// DeleteList removes a list by id.
func (h *ListHandler) DeleteList(c echo.Context) error {
	store := h.lists.For(middleware.Identity(c))
	store.Load(c.Request().Context())

	if err := store.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "List deleted")
}

// RenameList updates a list's display name.
func (h *ListHandler) RenameList(c echo.Context) error {
	var req RenameListRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid list input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	store := h.lists.For(middleware.Identity(c))
	store.Load(c.Request().Context())

	if err := store.Rename(c.Request().Context(), c.Param("id"), req.Name); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "List renamed")
}

// AddItem appends an item reference to a list.
func (h *ListHandler) AddItem(c echo.Context) error {
	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	store := h.lists.For(middleware.Identity(c))
	store.Load(c.Request().Context())

	if err := store.AddItem(c.Request().Context(), c.Param("id"), req.ItemID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Item added")
}

// RemoveItem removes an item reference from a list.
func (h *ListHandler) RemoveItem(c echo.Context) error {
	store := h.lists.For(middleware.Identity(c))
	store.Load(c.Request().Context())

	if err := store.RemoveItem(c.Request().Context(), c.Param("id"), c.Param("itemID")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Item removed")
}
