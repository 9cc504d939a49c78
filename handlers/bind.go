package handlers

import (
	"fmt"

	"lovelink/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// bindDocument decodes the request body as a JSON object. No schema is
// enforced; whatever fields the client sends are stored.
func bindDocument(c *gin.Context) (bson.M, bool) {
	var doc map[string]interface{}
	if err := c.ShouldBindJSON(&doc); err != nil || doc == nil {
		utils.RespondError(c, fmt.Errorf("%w: %v", utils.ErrInvalidBody, err))
		return nil, false
	}
	return bson.M(doc), true
}
