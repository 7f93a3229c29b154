package transport

import (
	"net/http"
	"strconv"

	"github.com/creativeclicks/studio-backend/internal/entity"
	"github.com/creativeclicks/studio-backend/internal/service"
	"github.com/gin-gonic/gin"
)

type WorkshopHandler struct {
	service service.WorkshopService
}

func NewWorkshopHandler(service service.WorkshopService) *WorkshopHandler {
	return &WorkshopHandler{service: service}
}

func (h *WorkshopHandler) Create(c *gin.Context) {
	var req entity.WorkshopCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workshop, err := h.service.CreateWorkshop(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, workshop)
}

func (h *WorkshopHandler) List(c *gin.Context) {
	activeOnly, err := strconv.ParseBool(c.DefaultQuery("active_only", "true"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid active_only flag"})
		return
	}

	workshops, err := h.service.ListWorkshops(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}

	if workshops == nil {
		workshops = []*entity.Workshop{}
	}
	c.JSON(http.StatusOK, workshops)
}

func (h *WorkshopHandler) Get(c *gin.Context) {
	workshop, err := h.service.GetWorkshop(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, workshop)
}

func (h *WorkshopHandler) Register(c *gin.Context) {
	var req entity.WorkshopRegistrationCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	redirect, err := h.service.Register(c.Request.Context(), c.Param("id"), &req, requestBaseURL(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, redirect)
}
