package public

import (
	"errors"

	handlershared "github.com/shopora-next/internal/http/handlers/shared"
	"github.com/shopora-next/internal/http/response"
	"github.com/shopora-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

var cartMutationErrorRules = []mappedHandlerError{
	{target: service.ErrUnauthenticated, code: response.CodeUnauthorized, msg: "authentication required"},
	{target: service.ErrNotFound, code: response.CodeBadRequest, msg: "product not available"},
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, msg: "invalid cart item"},
}

var wishlistMutationErrorRules = []mappedHandlerError{
	{target: service.ErrUnauthenticated, code: response.CodeUnauthorized, msg: "authentication required"},
	{target: service.ErrAlreadyExists, code: response.CodeBadRequest, msg: "product already in wishlist"},
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, msg: "invalid wishlist item"},
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrUnauthenticated, code: response.CodeUnauthorized, msg: "authentication required"},
	{target: service.ErrEmptyCart, code: response.CodeBadRequest, msg: "cart is empty"},
	{target: service.ErrPaymentDeclined, code: response.CodeBadRequest, msg: "payment was declined, please try again"},
	{target: service.ErrNotFound, code: response.CodeBadRequest, msg: "product no longer available"},
	{target: service.ErrPersistence, code: response.CodeInternal, msg: "order could not be saved"},
}

var orderErrorRules = []mappedHandlerError{
	{target: service.ErrUnauthenticated, code: response.CodeUnauthorized, msg: "authentication required"},
	{target: service.ErrNotFound, code: response.CodeNotFound, msg: "order not found"},
	{target: service.ErrInvalidState, code: response.CodeBadRequest, msg: "order can no longer be cancelled"},
}

func respondCheckoutError(c *gin.Context, err error) {
	// 表单校验失败时带上第一个出错字段，便于前端定位
	if errors.Is(err, service.ErrFormInvalid) {
		msg := "shipping form invalid"
		if ferr, ok := err.(interface{ Field() string }); ok && ferr.Field() != "" {
			msg = "invalid field: " + ferr.Field()
		}
		respondError(c, response.CodeBadRequest, msg, nil)
		return
	}
	respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "checkout failed")
}
