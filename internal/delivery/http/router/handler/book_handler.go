package handler

import (
	"log/slog"
	"net/http"

	"bookswap/internal/delivery/http/response"
	"bookswap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BookHandler holds dependencies for book-related handlers.
type BookHandler struct {
	uc     usecase.BookUsecase
	logger *slog.Logger
}

// NewBookHandler is the constructor for BookHandler, injected by Fx.
func NewBookHandler(uc usecase.BookUsecase, logger *slog.Logger) *BookHandler {
	return &BookHandler{
		uc:     uc,
		logger: logger,
	}
}

type createBookRequest struct {
	Title         string `json:"title" validate:"required"`
	Type          string `json:"type"`
	State         string `json:"state"`
	PublishedYear int    `json:"publishedYear"`
	Genre         string `json:"genre"`
	Author        string `json:"author"`
	Size          string `json:"size"`
	Picture       string `json:"picture"`
}

type updateBookRequest struct {
	Title         *string `json:"title"`
	Type          *string `json:"type"`
	State         *string `json:"state"`
	PublishedYear *int    `json:"publishedYear"`
	Genre         *string `json:"genre"`
	Author        *string `json:"author"`
	Size          *string `json:"size"`
	Picture       *string `json:"picture"`
}

// CreateBook registers a new book under the user in the path.
func (h *BookHandler) CreateBook(c echo.Context) error {
	ownerID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	var req createBookRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	book, err := h.uc.CreateBook(c.Request().Context(), ownerID, &usecase.CreateBookInput{
		Title:         req.Title,
		Type:          req.Type,
		State:         req.State,
		PublishedYear: req.PublishedYear,
		Genre:         req.Genre,
		Author:        req.Author,
		Size:          req.Size,
		Picture:       req.Picture,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, book, "Book created successfully")
}

// ListOwned returns the books owned by the user in the path.
func (h *BookHandler) ListOwned(c echo.Context) error {
	ownerID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	books, err := h.uc.ListOwned(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, books, "Books retrieved successfully")
}

// ListOthers returns the catalogue of books owned by everyone else.
func (h *BookHandler) ListOthers(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	books, err := h.uc.ListOthers(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, books, "Books retrieved successfully")
}

// GetBook returns a single book.
func (h *BookHandler) GetBook(c echo.Context) error {
	bookID, err := uuid.Parse(c.Param("bookId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid book id")
	}

	book, err := h.uc.GetBook(c.Request().Context(), bookID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, book, "Book retrieved successfully")
}

// UpdateBook applies a partial update to a book.
func (h *BookHandler) UpdateBook(c echo.Context) error {
	bookID, err := uuid.Parse(c.Param("bookId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid book id")
	}

	var req updateBookRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book input")
	}

	book, err := h.uc.UpdateBook(c.Request().Context(), bookID, &usecase.UpdateBookInput{
		Title:         req.Title,
		Type:          req.Type,
		State:         req.State,
		PublishedYear: req.PublishedYear,
		Genre:         req.Genre,
		Author:        req.Author,
		Size:          req.Size,
		Picture:       req.Picture,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, book, "Book updated successfully")
}

// DeleteBook removes a book from the catalogue.
func (h *BookHandler) DeleteBook(c echo.Context) error {
	bookID, err := uuid.Parse(c.Param("bookId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid book id")
	}

	if err := h.uc.DeleteBook(c.Request().Context(), bookID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Book deleted successfully")
}
