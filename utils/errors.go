package utils

import (
	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"

	"github.com/gvasquezjhon/granhotel/validation"
)

func CreateError(statusCode int, title string, detail string, ctx iris.Context) {
	ctx.StatusCode(statusCode)
	ctx.JSON(iris.Map{"title": title, "detail": detail})
}

func CreateInternalServerError(ctx iris.Context) {
	CreateError(iris.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred", ctx)
}

func CreateNotFound(ctx iris.Context) {
	CreateError(iris.StatusNotFound, "Not Found", "Resource not found", ctx)
}

// HandleValidationErrors maps errors out of ctx.ReadJSON into the
// field->message object the console renders inline. Struct-tag violations
// (validator.ValidationErrors) report per field; anything else is a malformed
// body.
func HandleValidationErrors(err error, ctx iris.Context) {
	if errs, ok := err.(validator.ValidationErrors); ok {
		fields := iris.Map{}
		for _, e := range errs {
			fields[e.Field()] = "invalid value, failed '" + e.Tag() + "' rule"
		}
		ctx.StatusCode(iris.StatusUnprocessableEntity)
		ctx.JSON(iris.Map{"title": "Validation Error", "errors": fields})
		return
	}
	CreateError(iris.StatusBadRequest, "Bad Request", "Malformed request body", ctx)
}

// CreateFieldErrors renders the rule-set's field errors with the same shape
// HandleValidationErrors uses, plus an overall validity flag.
func CreateFieldErrors(errs validation.FieldErrors, ctx iris.Context) {
	ctx.StatusCode(iris.StatusUnprocessableEntity)
	ctx.JSON(iris.Map{"title": "Validation Error", "valid": false, "errors": errs})
}
