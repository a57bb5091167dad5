package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/TodeschiniDeveloper/gestao-projetos-api/pkg/apperror"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/pkg/helpers"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/pkg/response"
)

// CtxClaimsKey is where Auth stores the verified claim map.
const CtxClaimsKey = "claims"

// Auth is the admission gate for protected routes. It verifies the bearer
// token from the Authorization header and puts the claims in the context;
// any failure short-circuits with 401 before the handler runs. The failure
// reason is logged but never sent to the client.
func Auth(tokens *helpers.TokenManager, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := tokens.Verify(c.GetHeader("Authorization"))
		if err != nil {
			logger.WithFields(logrus.Fields{
				"path":   c.Request.URL.Path,
				"reason": err.Error(),
			}).Warn("token rejeitado")
			response.Abort(c, apperror.Auth("token inválido", nil))
			return
		}
		c.Set(CtxClaimsKey, claims)
		c.Next()
	}
}
