package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodeMapping(t *testing.T) {
	tests := []struct {
		err  *AppError
		want int
	}{
		{NewBadRequestError("bad"), http.StatusBadRequest},
		{NewValidationError("invalid"), http.StatusBadRequest},
		{NewUnauthorizedError("login"), http.StatusUnauthorized},
		{NewInvalidCredentialsError(), http.StatusUnauthorized},
		{NewSessionInvalidError(), http.StatusUnauthorized},
		{NewForbiddenError("admins only"), http.StatusForbidden},
		{NewNotFoundError("recipe"), http.StatusNotFound},
		{NewRecipeNotFoundError(1), http.StatusNotFound},
		{NewIngredientNotFoundError(2), http.StatusNotFound},
		{NewOrderNotFoundError(3), http.StatusNotFound},
		{NewConflictError("taken"), http.StatusConflict},
		{NewUsernameAlreadyExistsError("u"), http.StatusConflict},
		{NewEmailAlreadyExistsError("e"), http.StatusConflict},
		{NewInternalError("boom"), http.StatusInternalServerError},
		{NewDatabaseError("insert", fmt.Errorf("down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.err.Code), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.StatusCode())
		})
	}
}

func TestIngredientNotFoundMessage(t *testing.T) {
	err := NewIngredientNotFoundError(9999)
	assert.Equal(t, "Ingredient 9999 not found", err.Message)
}

func TestNotFoundMessageTitleCasesResource(t *testing.T) {
	assert.Equal(t, "Recipe not found", NewNotFoundError("recipe").Message)
	assert.Equal(t, "Resource not found", NewNotFoundError("").Message)
}

func TestToErrorResponseHidesCause(t *testing.T) {
	err := NewDatabaseError("insert order", fmt.Errorf("connection refused"))
	resp := ToErrorResponse(err)

	assert.NotContains(t, resp.Error, "connection refused")
}

func TestWrapPassesThroughAppErrors(t *testing.T) {
	original := NewRecipeNotFoundError(7)
	wrapped := Wrap(original, "ignored")
	assert.Same(t, original, wrapped)

	plain := fmt.Errorf("plain failure")
	wrapped = Wrap(plain, "request failed")
	assert.Equal(t, CodeInternal, wrapped.Code)
	assert.Equal(t, plain, wrapped.Cause)
}

func TestGetAppError(t *testing.T) {
	appErr := NewForbiddenError("no")
	assert.Same(t, appErr, GetAppError(appErr))

	converted := GetAppError(fmt.Errorf("boom"))
	assert.Equal(t, CodeInternal, converted.Code)
	assert.Equal(t, http.StatusInternalServerError, converted.StatusCode())
}

func TestIsAndGetCode(t *testing.T) {
	err := NewOrderNotFoundError(5)
	assert.True(t, Is(err, CodeOrderNotFound))
	assert.False(t, Is(err, CodeRecipeNotFound))
	assert.Equal(t, CodeOrderNotFound, GetCode(err))
	assert.Equal(t, CodeInternal, GetCode(fmt.Errorf("x")))
}
