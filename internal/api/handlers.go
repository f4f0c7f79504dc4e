package api

import (
	"errors"
	"net/http"

	"formapi/internal/models"
	"formapi/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	Service *service.DetailService
}

func NewAPIHandler(service *service.DetailService) *Handler {
	return &Handler{
		Service: service,
	}
}

func (h *Handler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexPage))
}

func (h *Handler) PostDetails(c *gin.Context) {
	var req models.CreateDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": fieldErrors(verrs)})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}
	detail := h.Service.CreateDetail(req)
	c.JSON(http.StatusOK, detail)
}

func (h *Handler) GetDetails(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.ListDetails())
}

func (h *Handler) GetDetailByID(c *gin.Context) {
	detail, err := h.Service.GetDetail(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Detail not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *Handler) ClearDetails(c *gin.Context) {
	count := h.Service.ClearDetails()
	c.JSON(http.StatusOK, gin.H{"message": "All details cleared successfully", "count": count})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "healthy",
		"total_records": len(h.Service.ListDetails()),
	})
}
