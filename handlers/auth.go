package handlers

import (
	"net/http"

	"lovelink/models"
	"lovelink/utils"

	"github.com/gin-gonic/gin"
)

// TokenIssuer is satisfied by *utils.TokenManager.
type TokenIssuer interface {
	Issue(claims utils.Claims) (string, error)
}

// TokenHandler mints access tokens.
type TokenHandler struct {
	Tokens TokenIssuer
}

func NewTokenHandler(tokens TokenIssuer) *TokenHandler {
	return &TokenHandler{Tokens: tokens}
}

// IssueTokenHandler handles POST /jwt. The request body becomes the token
// claims verbatim.
func (h *TokenHandler) IssueTokenHandler(c *gin.Context) {
	claims, ok := bindDocument(c)
	if !ok {
		return
	}
	token, err := h.Tokens.Issue(utils.Claims(claims))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.TokenResponse{Token: token})
}
