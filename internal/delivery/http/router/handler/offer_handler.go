package handler

import (
	"log/slog"
	"net/http"

	"bookswap/internal/delivery/http/response"
	"bookswap/internal/domain/entity"
	"bookswap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OfferHandler holds dependencies for offer-related handlers.
type OfferHandler struct {
	uc     usecase.OfferUsecase
	logger *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler, injected by Fx.
func NewOfferHandler(uc usecase.OfferUsecase, logger *slog.Logger) *OfferHandler {
	return &OfferHandler{
		uc:     uc,
		logger: logger,
	}
}

// offerResponse augments the stored offer with its derived negotiation status.
type offerResponse struct {
	*entity.Offer
	Status entity.OfferStatus `json:"status"`
}

func toOfferResponse(offer *entity.Offer) *offerResponse {
	return &offerResponse{Offer: offer, Status: offer.Status()}
}

func toOfferResponseSlice(offers []*entity.Offer) []*offerResponse {
	out := make([]*offerResponse, 0, len(offers))
	for _, offer := range offers {
		out = append(out, toOfferResponse(offer))
	}

	return out
}

// Propose opens a negotiation: the user in the path offers to swap for the
// book in the path.
func (h *OfferHandler) Propose(c echo.Context) error {
	proposerID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}
	bookID, err := uuid.Parse(c.Param("bookId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid book id")
	}

	offer, err := h.uc.Propose(c.Request().Context(), proposerID, bookID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOfferResponse(offer), "Offer proposed successfully")
}

// Counter attaches the counter-party's book to an existing offer.
func (h *OfferHandler) Counter(c echo.Context) error {
	offerID, err := uuid.Parse(c.Param("offerId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid offer id")
	}
	bookID, err := uuid.Parse(c.Param("bookId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid book id")
	}

	offer, err := h.uc.Counter(c.Request().Context(), offerID, bookID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOfferResponse(offer), "Offer countered successfully")
}

// Accept records the proposer's agreement to the current terms.
func (h *OfferHandler) Accept(c echo.Context) error {
	offerID, err := uuid.Parse(c.Param("offerId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid offer id")
	}

	offer, err := h.uc.Accept(c.Request().Context(), offerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOfferResponse(offer), "Offer accepted successfully")
}

// ListForUser returns every offer the user participates in.
func (h *OfferHandler) ListForUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	offers, err := h.uc.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOfferResponseSlice(offers), "Offers retrieved successfully")
}

// Withdraw deletes an offer.
func (h *OfferHandler) Withdraw(c echo.Context) error {
	offerID, err := uuid.Parse(c.Param("offerId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid offer id")
	}

	offer, err := h.uc.Withdraw(c.Request().Context(), offerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOfferResponse(offer), "Offer withdrawn successfully")
}
