// Package response はハンドラー共通のエラーレスポンス出力を提供します。
package response

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"vnstock_api/internal/api"
	"vnstock_api/internal/shared/apperror"
)

// Error はerrをステータスコードに変換して {"error": msg} を書き込みます。
//
//   - apperror.ErrNotFound → 404 (notFoundMsg)
//   - それ以外 → 500 (err.Error())
func Error(c *gin.Context, err error, notFoundMsg string) {
	if apperror.IsNotFound(err) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: notFoundMsg})
		return
	}

	slog.Error("request failed",
		"path", c.Request.URL.Path,
		"error", err,
	)
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
}

// BadRequest は生成コードのパラメータバインド失敗時に使うエラーハンドラーです。
// api.GinServerOptions.ErrorHandler に渡します。
func BadRequest(c *gin.Context, err error, statusCode int) {
	slog.Warn("invalid request parameter",
		"path", c.Request.URL.Path,
		"error", err,
	)
	c.AbortWithStatusJSON(statusCode, api.ErrorResponse{Error: err.Error()})
}
