// Package handlers はHTTPハンドラーを提供します。
package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindErrorResponse はGinのバインドエラーを {message, field} 形式に変換します。
// バリデーションエラーが複数ある場合は最初のものだけを返します。
func bindErrorResponse(err error) gin.H {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := strings.ToLower(fe.Field())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", field)
		case "min":
			msg = fmt.Sprintf("%s must not be empty", field)
		default:
			msg = fmt.Sprintf("%s is invalid", field)
		}
		return gin.H{"message": msg, "field": field}
	}
	// JSONとして不正など、フィールドに紐付かないエラー
	return gin.H{"message": "Invalid request payload"}
}
