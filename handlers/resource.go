package handlers

import (
	"errors"
	"net/http"

	documentRepo "lovelink/database/repository/document"
	"lovelink/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// ResourceHandler exposes one schema-less collection over HTTP.
type ResourceHandler struct {
	Repo documentRepo.Repository
}

func NewResourceHandler(repo documentRepo.Repository) *ResourceHandler {
	return &ResourceHandler{Repo: repo}
}

// ListHandler returns every document in the collection.
func (h *ResourceHandler) ListHandler(c *gin.Context) {
	h.list(c, nil)
}

// ListByOwnerHandler returns the documents whose email equals the "email"
// query parameter. Without the parameter it matches documents with no
// email, like a null equality filter.
func (h *ResourceHandler) ListByOwnerHandler(c *gin.Context) {
	var owner interface{}
	if email, ok := c.GetQuery("email"); ok {
		owner = email
	}
	h.list(c, bson.M{"email": owner})
}

func (h *ResourceHandler) list(c *gin.Context, filter bson.M) {
	docs, err := h.Repo.List(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// GetByIDHandler returns one document, or a null body when it does not exist.
func (h *ResourceHandler) GetByIDHandler(c *gin.Context) {
	doc, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, utils.ErrNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// CreateHandler stores the request body as a new document.
func (h *ResourceHandler) CreateHandler(c *gin.Context) {
	doc, ok := bindDocument(c)
	if !ok {
		return
	}
	res, err := h.Repo.Insert(c.Request.Context(), doc)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteHandler removes the document with the path id.
func (h *ResourceHandler) DeleteHandler(c *gin.Context) {
	res, err := h.Repo.DeleteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
