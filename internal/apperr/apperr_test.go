package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Status(Validationf("cantidad inválida")))
	assert.Equal(t, http.StatusConflict, Status(Conflictf("no hay stock suficiente")))
	assert.Equal(t, http.StatusNotFound, Status(NotFoundf("orden no encontrada")))
	assert.Equal(t, http.StatusUnauthorized, Status(Unauthorizedf("no autorizado")))
	assert.Equal(t, http.StatusInternalServerError, Status(Internalf(errors.New("boom"), "db")))
	assert.Equal(t, http.StatusInternalServerError, Status(errors.New("plain")))
}

func TestMessageHidesInternals(t *testing.T) {
	assert.Equal(t, "no hay stock suficiente", Message(Conflictf("no hay stock suficiente")))
	assert.Equal(t, "error interno del servidor", Message(Internalf(errors.New("pq: connection refused"), "query")))
	assert.Equal(t, "error interno del servidor", Message(errors.New("pq: connection refused")))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("placing order: %w", Conflictf("no hay stock suficiente"))
	assert.Equal(t, Conflict, KindOf(err))
	assert.Equal(t, http.StatusConflict, Status(err))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("pq: deadlock detected")
	err := Internalf(cause, "create order")
	assert.ErrorIs(t, err, cause)
}
