package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/arkhipovds/leadbox/internal/domain/errors"
	"github.com/arkhipovds/leadbox/internal/domain/model"
	"github.com/arkhipovds/leadbox/internal/server/http/dto"
	"github.com/arkhipovds/leadbox/internal/usecase"
)

// LeadHandler manages lead endpoints.
type LeadHandler struct {
	facade LeadFacade
}

// NewLeadHandler constructs LeadHandler.
func NewLeadHandler(facade LeadFacade) *LeadHandler {
	return &LeadHandler{facade: facade}
}

// Create handles POST /api/leads.
func (h *LeadHandler) Create(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	var req dto.LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	lead, err := h.facade.CreateLead(c.Request.Context(), user.ID, toLeadInput(req))
	if err != nil {
		writeLeadError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toLeadResponse(lead))
}

// List handles GET /api/leads.
func (h *LeadHandler) List(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	leads, err := h.facade.Leads(c.Request.Context(), user.ID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.LeadResponse, 0, len(leads))
	for i := range leads {
		response = append(response, toLeadResponse(&leads[i]))
	}

	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/leads/:id.
func (h *LeadHandler) Get(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	leadID, ok := leadIDParam(c)
	if !ok {
		return
	}

	lead, err := h.facade.Lead(c.Request.Context(), user.ID, leadID)
	if err != nil {
		writeLeadError(c, err)
		return
	}

	c.JSON(http.StatusOK, toLeadResponse(lead))
}

// Update handles PUT /api/leads/:id.
func (h *LeadHandler) Update(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	leadID, ok := leadIDParam(c)
	if !ok {
		return
	}

	var req dto.LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	lead, err := h.facade.UpdateLead(c.Request.Context(), user.ID, leadID, toLeadInput(req))
	if err != nil {
		writeLeadError(c, err)
		return
	}

	c.JSON(http.StatusOK, toLeadResponse(lead))
}

// Delete handles DELETE /api/leads/:id.
func (h *LeadHandler) Delete(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	leadID, ok := leadIDParam(c)
	if !ok {
		return
	}

	if err := h.facade.DeleteLead(c.Request.Context(), user.ID, leadID); err != nil {
		writeLeadError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func leadIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.Status(http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeLeadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidInput):
		c.Status(http.StatusBadRequest)
	case errors.Is(err, domainErrors.ErrForbidden):
		c.Status(http.StatusForbidden)
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	default:
		c.Status(http.StatusInternalServerError)
	}
}

func toLeadInput(req dto.LeadRequest) usecase.LeadInput {
	return usecase.LeadInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Company:   req.Company,
		Note:      req.Note,
	}
}

func toLeadResponse(lead *model.Lead) dto.LeadResponse {
	return dto.LeadResponse{
		ID:        lead.ID,
		FirstName: lead.FirstName,
		LastName:  lead.LastName,
		Email:     lead.Email,
		Company:   lead.Company,
		Note:      lead.Note,
		CreatedAt: lead.CreatedAt,
		UpdatedAt: lead.UpdatedAt,
	}
}
