package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/procurement-console/internal/server/http/dto"
)

// MaxDecodedBody caps an inflated request body. Console payloads are a
// header, a line edit or a short reason.
const MaxDecodedBody = 1 << 20

// DecompressRequest inflates gzip request bodies and refuses other encodings.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch encoding := strings.ToLower(strings.TrimSpace(c.GetHeader("Content-Encoding"))); encoding {
		case "", "identity":
			c.Next()
			return
		case "gzip", "x-gzip":
		default:
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType,
				dto.ErrorResponse{Error: "unsupported content encoding " + encoding})
			return
		}

		originalBody := c.Request.Body
		reader, err := gzip.NewReader(originalBody)
		if err != nil {
			BadRequest(c, "malformed gzip body")
			return
		}
		defer originalBody.Close()

		c.Request.Body = http.MaxBytesReader(c.Writer, reader, MaxDecodedBody)
		c.Request.Header.Del("Content-Encoding")
		c.Request.ContentLength = -1
		c.Next()
	}
}
