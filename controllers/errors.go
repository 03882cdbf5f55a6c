package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"

	"gin-items/constants"
	"gin-items/dto"
	"gin-items/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// 入力の場所
const (
	sourceBody  = "body"
	sourceQuery = "query"
	sourcePath  = "path"
)

// writeError maps a service error onto its HTTP status and detail message.
func writeError(ctx *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: constants.ErrEmailRegistered})
	case errors.Is(err, services.ErrInvalidCredentials):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: constants.ErrInvalidCredentials})
	case errors.Is(err, services.ErrInactiveUser):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: constants.ErrInactiveUser})
	case errors.Is(err, services.ErrInvalidToken):
		ctx.Header("WWW-Authenticate", "Bearer")
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Detail: constants.ErrInvalidCredentialsJWT})
	case errors.Is(err, services.ErrSelfDelete):
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Detail: constants.ErrSelfDelete})
	case errors.Is(err, services.ErrItemNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: constants.ErrItemNotFound})
	case errors.Is(err, services.ErrUserNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: constants.ErrUserNotFound})
	default:
		logger.Error("Unexpected error",
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: constants.ErrUnexpected})
	}
}

func writeValidation(ctx *gin.Context, details ...dto.ValidationDetail) {
	ctx.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{Detail: details})
}

// writeBindError renders a gin binding failure as a 422 response.
func writeBindError(ctx *gin.Context, source string, err error) {
	var (
		fieldErrs validator.ValidationErrors
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
		numErr    *strconv.NumError
	)

	switch {
	case errors.As(err, &fieldErrs):
		details := make([]dto.ValidationDetail, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msg, typ := describeFieldError(fe)
			details = append(details, dto.ValidationDetail{
				Loc:  []string{source, fe.Field()},
				Msg:  msg,
				Type: typ,
			})
		}
		writeValidation(ctx, details...)
	case errors.As(err, &typeErr):
		loc := []string{source}
		if typeErr.Field != "" {
			loc = append(loc, typeErr.Field)
		}
		writeValidation(ctx, dto.ValidationDetail{
			Loc:  loc,
			Msg:  fmt.Sprintf("Input should be a valid %s", typeErr.Type.Kind()),
			Type: typeErr.Type.Kind().String() + "_type",
		})
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		writeValidation(ctx, dto.ValidationDetail{
			Loc:  []string{source},
			Msg:  "JSON decode error",
			Type: "json_invalid",
		})
	case errors.Is(err, io.EOF):
		writeValidation(ctx, dto.ValidationDetail{
			Loc:  []string{source},
			Msg:  "Field required",
			Type: "missing",
		})
	case errors.As(err, &numErr):
		writeValidation(ctx, dto.ValidationDetail{
			Loc:  []string{source},
			Msg:  fmt.Sprintf("Input should be a valid integer, unable to parse %q", numErr.Num),
			Type: "int_parsing",
		})
	default:
		writeValidation(ctx, dto.ValidationDetail{
			Loc:  []string{source},
			Msg:  err.Error(),
			Type: "value_error",
		})
	}
}

func describeFieldError(fe validator.FieldError) (string, string) {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "Field required", "missing"
	case "notblank":
		return "String should not be blank", "string_blank"
	case "email":
		return "value is not a valid email address", "value_error"
	case "min":
		if isString {
			return fmt.Sprintf("String should have at least %s characters", fe.Param()), "string_too_short"
		}
		return fmt.Sprintf("Input should be greater than or equal to %s", fe.Param()), "greater_than_equal"
	case "max":
		if isString {
			return fmt.Sprintf("String should have at most %s characters", fe.Param()), "string_too_long"
		}
		return fmt.Sprintf("Input should be less than or equal to %s", fe.Param()), "less_than_equal"
	case "maxbytes":
		return fmt.Sprintf("String should have at most %s bytes", fe.Param()), "string_too_long"
	default:
		return fmt.Sprintf("Failed on the '%s' rule", fe.Tag()), "value_error"
	}
}

// parseID reads a UUID path parameter, writing a 422 response when it is malformed.
func parseID(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		writeValidation(ctx, dto.ValidationDetail{
			Loc:  []string{sourcePath, name},
			Msg:  "Input should be a valid UUID",
			Type: "uuid_parsing",
		})
		return uuid.Nil, false
	}
	return id, true
}

func writeEmptyPatch(ctx *gin.Context) {
	writeValidation(ctx, dto.ValidationDetail{
		Loc:  []string{sourceBody},
		Msg:  "At least one field must be provided",
		Type: "value_error",
	})
}
