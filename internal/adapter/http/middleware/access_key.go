package middleware

import (
	"net/http"

	"fren_docs/pkg"

	"github.com/gin-gonic/gin"
)

// AccessKeyHeader is the header alternative to the "key" query parameter.
const AccessKeyHeader = "X-Access-Key"

var errInvalidAccessKey = pkg.NewDomainErrorSimple("INVALID_ACCESS_KEY", "アクセスキーが不正です", http.StatusUnauthorized)

// AccessKey gates a route group behind a shared key. The key is read from
// the "key" query parameter or the X-Access-Key header. An empty expected
// key disables the gate so local development works without configuration.
func AccessKey(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if expected == "" {
			c.Next()
			return
		}

		key := c.Query("key")
		if key == "" {
			key = c.GetHeader(AccessKeyHeader)
		}
		if key != expected {
			c.AbortWithStatusJSON(errInvalidAccessKey.HTTPStatus, errInvalidAccessKey.ToHTTPError())
			return
		}
		c.Next()
	}
}
