package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID é o header de correlação das requisições
const HeaderRequestID = "X-Request-ID"

// RequestID atribui um identificador a cada requisição, reaproveitando o
// header do cliente quando presente
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set("request_id", id)
		c.Writer.Header().Set(HeaderRequestID, id)

		c.Next()
	}
}
